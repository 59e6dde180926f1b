package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/p2local/internal/adapters/config"
	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(logger), logger
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, domain.ConfigFileName, `
repository: local-repo
lockTimeout: 5s
packedFormatAvailable: true
filters:
  - type: eclipse-plugin
    id: trf.bundle.multiversion
    removeAll: true
  - type: osgi-bundle
    id: org.eclipse.osgi
    restrictTo:
      versionRange: "[3.6,3.7)"
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "local-repo"), cfg.Repository)
	assert.Equal(t, 5*time.Second, cfg.LockTimeout)
	assert.True(t, cfg.PackedFormatAvailable)
	require.Len(t, cfg.Filters, 2)

	assert.IsType(t, domain.RemoveAll{}, cfg.Filters[0].Action)
	assert.Equal(t, domain.NamespaceBundle, cfg.Filters[0].Scope.Namespace())
	assert.Equal(t, "trf.bundle.multiversion", cfg.Filters[0].Scope.ID())

	restrict, ok := cfg.Filters[1].Action.(domain.Restrict)
	require.True(t, ok)
	assert.Equal(t, "[3.6,3.7)", restrict.Pattern.Spec().VersionRange)
	assert.Empty(t, restrict.Pattern.Namespace())
}

func TestLoader_LoadMissingUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	loader, logger := newLoader(t)
	logger.EXPECT().Info("no p2local.yaml found, using defaults")

	cfg, err := loader.Load(filepath.Join(dir, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Repository)
	assert.Equal(t, domain.DefaultLockTimeout, cfg.LockTimeout)
	assert.False(t, cfg.PackedFormatAvailable)
	assert.Empty(t, cfg.Filters)
}

func TestLoader_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid yaml",
			content: "filters: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "bad duration",
			content: "lockTimeout: soon",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "negative duration",
			content: "lockTimeout: -1s",
			wantErr: domain.ErrInvalidTimeout,
		},
		{
			name: "malformed version",
			content: `
filters:
  - type: osgi-bundle
    id: a
    restrictTo:
      version: "1.a"
`,
			wantErr: domain.ErrPatternSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			_, err := loader.Load(writeFile(t, domain.ConfigFileName, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_LoadUnits(t *testing.T) {
	path := writeFile(t, "units.yaml", `
units:
  - id: trf.bundle.multiversion
    version: 1.0.0
    bundle: {}
    packages:
      - name: trf.pkg
        version: 1.0.0
  - id: feature.group
    version: 2.0.0.v20240101
    capabilities:
      - namespace: org.example.custom
        name: thing
`)
	loader, _ := newLoader(t)

	units, err := loader.LoadUnits(path)
	require.NoError(t, err)
	require.Len(t, units, 2)

	bundle, ok := units[0].BundleCapability()
	require.True(t, ok)
	assert.Equal(t, "trf.bundle.multiversion", bundle.Name)
	assert.Equal(t, "1.0.0", bundle.Version.String())
	require.Len(t, units[0].PackageCapabilities(), 1)
	assert.Equal(t, "trf.pkg", units[0].PackageCapabilities()[0].Name)

	_, ok = units[1].BundleCapability()
	assert.False(t, ok)
	assert.Equal(t, "feature.group/2.0.0.v20240101", units[1].String())
	assert.Equal(t, domain.Namespace("org.example.custom"), units[1].Capabilities[1].Namespace)
}

func TestLoader_LoadUnitsErrors(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.LoadUnits(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrUnitsReadFailed)

	_, err = loader.LoadUnits(writeFile(t, "units.yaml", "units:\n  - version: 1.0.0\n"))
	require.ErrorIs(t, err, domain.ErrUnitsReadFailed)

	_, err = loader.LoadUnits(writeFile(t, "units.yaml", "units:\n  - id: a\n    version: x.y\n"))
	require.ErrorIs(t, err, domain.ErrUnitsReadFailed)
	require.ErrorIs(t, err, domain.ErrInvalidVersion)
}
