package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/p2local/internal/core/domain"
)

func TestParseDescriptor(t *testing.T) {
	t.Parallel()

	d, err := domain.ParseDescriptor("osgi.bundle,org.example,1.0.0")
	require.NoError(t, err)
	assert.True(t, domain.IsCanonical(d.Format))
	assert.Equal(t, "osgi.bundle,org.example,1.0.0", d.String())

	d, err = domain.ParseDescriptor("osgi.bundle,org.example,1.0.0@packed")
	require.NoError(t, err)
	assert.False(t, domain.IsCanonical(d.Format))
	assert.Equal(t, domain.PackedFormat{Name: "packed"}, d.Format)
	assert.Equal(t, "osgi.bundle,org.example,1.0.0@packed", d.String())

	_, err = domain.ParseDescriptor("org.example@packed")
	require.ErrorIs(t, err, domain.ErrMalformedDescriptor)
}

func TestParseUsageMode(t *testing.T) {
	t.Parallel()

	m, err := domain.ParseUsageMode("local")
	require.NoError(t, err)
	assert.Equal(t, domain.UsageLocalDisk, m)

	m, err = domain.ParseUsageMode("remote")
	require.NoError(t, err)
	assert.Equal(t, domain.UsageRemoteTransfer, m)
	assert.Equal(t, "remote", m.String())

	_, err = domain.ParseUsageMode("cloud")
	require.ErrorIs(t, err, domain.ErrUnknownUsageMode)
}

func TestLayoutPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "repo/.meta/p2-artifacts.properties", domain.DefaultArtifactsIndexPath("repo"))
	assert.Equal(t, "repo/.meta/p2-local-metadata.properties", domain.DefaultMetadataIndexPath("repo"))
	assert.Equal(t, "repo/.meta/p2-artifacts.properties.lock", domain.LockPathFor(domain.DefaultArtifactsIndexPath("repo")))
}
