package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/p2local/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"1":                 "1.0.0",
		"1.2":               "1.2.0",
		"1.2.3":             "1.2.3",
		"3.6.2.v00000000":   "3.6.2.v00000000",
		" 2.0.0 ":           "2.0.0",
		"1.0.0.qual_ifi-er": "1.0.0.qual_ifi-er",
	}
	for in, want := range valid {
		v, err := domain.ParseVersion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v.String(), in)
	}

	invalid := []string{"", "1.a", "1.0.0.", "a.b.c", "1..0", "-1", "1.0.0.q.r", "1.0.0.q!"}
	for _, in := range invalid {
		_, err := domain.ParseVersion(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, domain.ErrInvalidVersion, in)
	}
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	v := domain.MustParseVersion

	assert.True(t, v("1.0").Equal(v("1.0.0")))
	assert.Equal(t, -1, v("1.0.0").Compare(v("1.0.1")))
	assert.Equal(t, 1, v("2.0.0").Compare(v("1.9.9")))
	assert.Equal(t, -1, v("1.0.0").Compare(v("1.0.0.a")))
	assert.Equal(t, 1, v("1.0.0.b").Compare(v("1.0.0.a")))
	assert.True(t, domain.Version{}.Equal(v("0.0.0")))
}

func TestParseVersionRange(t *testing.T) {
	t.Parallel()

	v := domain.MustParseVersion

	tests := []struct {
		name     string
		input    string
		included []string
		excluded []string
	}{
		{
			name:     "half open",
			input:    "[1.0.0,2)",
			included: []string{"1.0.0", "1.9.9", "1.99.0.zzz"},
			excluded: []string{"0.9.9", "2.0.0", "2.0.0.a"},
		},
		{
			name:     "open lower closed upper",
			input:    "(1,2]",
			included: []string{"1.0.0.a", "2.0.0"},
			excluded: []string{"1.0.0", "2.0.0.a"},
		},
		{
			name:     "bare version is a lower bound",
			input:    "3.6",
			included: []string{"3.6.0", "100.0.0"},
			excluded: []string{"3.5.9"},
		},
		{
			name:     "empty interval",
			input:    "[1,1)",
			excluded: []string{"1.0.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := domain.ParseVersionRange(tt.input)
			require.NoError(t, err)
			for _, in := range tt.included {
				assert.True(t, r.Includes(v(in)), "%s should include %s", tt.input, in)
			}
			for _, ex := range tt.excluded {
				assert.False(t, r.Includes(v(ex)), "%s should exclude %s", tt.input, ex)
			}
		})
	}

	invalid := []string{"", "[1.0", "[1,2,3]", "[2,1]", "[1.a,2)", "(1,x]", "[,2)"}
	for _, in := range invalid {
		_, err := domain.ParseVersionRange(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, domain.ErrInvalidVersionRange, in)
	}
}

func TestVersionRange_String(t *testing.T) {
	t.Parallel()

	r, err := domain.ParseVersionRange("[1,2)")
	require.NoError(t, err)
	assert.Equal(t, "[1.0.0,2.0.0)", r.String())

	r, err = domain.ParseVersionRange("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5.0", r.String())
}
