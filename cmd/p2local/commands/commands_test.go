package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/p2local/cmd/p2local/commands"
	"go.trai.ch/p2local/internal/app"
	"go.trai.ch/p2local/internal/build"
	"go.trai.ch/p2local/internal/core/domain"
)

type mockApp struct {
	configPath string
	jsonLogs   bool

	listFunc   func(ctx context.Context, opts app.IndexOptions) ([]domain.GAV, error)
	addFunc    func(ctx context.Context, gavs []string, opts app.IndexOptions) error
	removeFunc func(ctx context.Context, gavs []string, opts app.IndexOptions) error
	pruneFunc  func(ctx context.Context) ([]domain.GAV, error)
	pathFunc   func(ctx context.Context, gav, classifier, extension string) (string, error)
	formatFunc func(ctx context.Context, mode string, descriptors []string) ([]domain.ArtifactDescriptor, error)
	filterFunc func(ctx context.Context, unitsPath string) (*app.FilterResult, error)
}

func (m *mockApp) SetConfigPath(path string) { m.configPath = path }

func (m *mockApp) SetLogJSON(enable bool) { m.jsonLogs = enable }

func (m *mockApp) ListIndex(ctx context.Context, opts app.IndexOptions) ([]domain.GAV, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) AddToIndex(ctx context.Context, gavs []string, opts app.IndexOptions) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, gavs, opts)
	}
	return nil
}

func (m *mockApp) RemoveFromIndex(ctx context.Context, gavs []string, opts app.IndexOptions) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, gavs, opts)
	}
	return nil
}

func (m *mockApp) Prune(ctx context.Context) ([]domain.GAV, error) {
	if m.pruneFunc != nil {
		return m.pruneFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) ArtifactPath(ctx context.Context, gav, classifier, extension string) (string, error) {
	if m.pathFunc != nil {
		return m.pathFunc(ctx, gav, classifier, extension)
	}
	return "", nil
}

func (m *mockApp) FormatOrder(ctx context.Context, mode string, descriptors []string) ([]domain.ArtifactDescriptor, error) {
	if m.formatFunc != nil {
		return m.formatFunc(ctx, mode, descriptors)
	}
	return nil, nil
}

func (m *mockApp) Filter(ctx context.Context, unitsPath string) (*app.FilterResult, error) {
	if m.filterFunc != nil {
		return m.filterFunc(ctx, unitsPath)
	}
	return &app.FilterResult{}, nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "index", "list", "--config", "sub/p2local.yaml", "--json")
	require.NoError(t, err)
	assert.Equal(t, "sub/p2local.yaml", mock.configPath)
	assert.True(t, mock.jsonLogs)

	mock = &mockApp{}
	_, err = execute(t, mock, "index", "list")
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigFileName, mock.configPath)
	assert.False(t, mock.jsonLogs)
}

func TestCommands_Index(t *testing.T) {
	t.Run("list prints one gav per line", func(t *testing.T) {
		var captured app.IndexOptions
		mock := &mockApp{
			listFunc: func(_ context.Context, opts app.IndexOptions) ([]domain.GAV, error) {
				captured = opts
				return []domain.GAV{domain.NewGAV("g", "a", "1"), domain.NewGAV("g", "b", "2")}, nil
			},
		}

		out, err := execute(t, mock, "index", "list", "--metadata")
		require.NoError(t, err)
		assert.True(t, captured.Metadata)
		assert.Equal(t, "g:a:1\ng:b:2\n", out)
	})

	t.Run("add passes gavs", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			addFunc: func(_ context.Context, gavs []string, opts app.IndexOptions) error {
				captured = gavs
				assert.False(t, opts.Metadata)
				return nil
			},
		}

		out, err := execute(t, mock, "index", "add", "g:a:1", "g:b:2")
		require.NoError(t, err)
		assert.Equal(t, []string{"g:a:1", "g:b:2"}, captured)
		assert.Equal(t, "✓ added g:a:1\n✓ added g:b:2\n", out)
	})

	t.Run("add requires an argument", func(t *testing.T) {
		mock := &mockApp{
			addFunc: func(context.Context, []string, app.IndexOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "index", "add")
		require.Error(t, err)
	})

	t.Run("remove returns app error", func(t *testing.T) {
		mock := &mockApp{
			removeFunc: func(context.Context, []string, app.IndexOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "index", "remove", "g:a:1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Prune(t *testing.T) {
	mock := &mockApp{
		pruneFunc: func(context.Context) ([]domain.GAV, error) {
			return []domain.GAV{domain.NewGAV("g", "a", "1")}, nil
		},
	}

	out, err := execute(t, mock, "prune")
	require.NoError(t, err)
	assert.Equal(t, "✓ pruned 1 entries\n", out)
}

func TestCommands_Path(t *testing.T) {
	var classifier, extension string
	mock := &mockApp{
		pathFunc: func(_ context.Context, gav, c, e string) (string, error) {
			classifier, extension = c, e
			return "/repo/" + gav, nil
		},
	}

	out, err := execute(t, mock, "path", "g:a:1", "--classifier", "p2artifacts", "--extension", "xml")
	require.NoError(t, err)
	assert.Equal(t, "p2artifacts", classifier)
	assert.Equal(t, "xml", extension)
	assert.Equal(t, "/repo/g:a:1\n", out)
}

func TestCommands_FormatOrder(t *testing.T) {
	var mode string
	mock := &mockApp{
		formatFunc: func(_ context.Context, m string, descriptors []string) ([]domain.ArtifactDescriptor, error) {
			mode = m
			out := make([]domain.ArtifactDescriptor, 0, len(descriptors))
			for i := len(descriptors) - 1; i >= 0; i-- {
				d, err := domain.ParseDescriptor(descriptors[i])
				require.NoError(t, err)
				out = append(out, d)
			}
			return out, nil
		},
	}

	out, err := execute(t, mock, "format", "order", "--mode", "remote", "c,a,1", "c,a,1@packed")
	require.NoError(t, err)
	assert.Equal(t, "remote", mode)
	assert.Equal(t, "c,a,1@packed\nc,a,1\n", out)
}

func TestCommands_Filter(t *testing.T) {
	unit := func(id, version string) *domain.Unit {
		return &domain.Unit{ID: id, Version: domain.MustParseVersion(version)}
	}
	mock := &mockApp{
		filterFunc: func(_ context.Context, path string) (*app.FilterResult, error) {
			assert.Equal(t, "units.yaml", path)
			return &app.FilterResult{
				Kept:    []*domain.Unit{unit("a", "1.0.0")},
				Removed: []*domain.Unit{unit("a", "2.0.0")},
			}, nil
		},
	}

	out, err := execute(t, mock, "filter", "units.yaml")
	require.NoError(t, err)
	assert.Equal(t, "✓ a/1.0.0\n✗ a/2.0.0\n1 kept, 1 removed\n", out)

	out, err = execute(t, mock, "filter", "units.yaml", "--removed")
	require.NoError(t, err)
	assert.Equal(t, "✗ a/2.0.0\n1 kept, 1 removed\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "p2local version "+build.Version)
}
