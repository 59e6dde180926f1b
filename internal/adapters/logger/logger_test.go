package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/p2local/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output to a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "info multiline",
			log:        func(lg *logger.Logger) { lg.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name:       "plain error",
			log:        func(lg *logger.Logger) { lg.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name: "zerr chain with metadata",
			log: func(lg *logger.Logger) {
				err := zerr.Wrap(errors.New("disk full"), "failed to save index")
				lg.Error(zerr.With(err, "path", "/r/.meta/p2-artifacts.properties"))
			},
			goldenName: "error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("removed all units")
	lg.Error(zerr.New("lock timeout"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var warn map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &warn))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "removed all units", warn["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	errObj, ok := failure["error"].(map[string]any)
	require.True(t, ok, "zerr errors log as a group")
	assert.Equal(t, "lock timeout", errObj["msg"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}
