// Package app implements the application layer for p2local.
package app

import (
	"context"
	"errors"

	"go.trai.ch/p2local/internal/adapters/index"      //nolint:depguard // Wired in app layer
	"go.trai.ch/p2local/internal/adapters/repository" //nolint:depguard // Wired in app layer
	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/p2local/internal/engine/filter"
	"go.trai.ch/p2local/internal/engine/format"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	units        ports.UnitSource
	locker       ports.Locker
	logger       ports.Logger
	configPath   string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, units ports.UnitSource, locker ports.Locker, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		units:        units,
		locker:       locker,
		logger:       log,
		configPath:   domain.ConfigFileName,
	}
}

// SetConfigPath sets the project configuration file to load.
func (a *App) SetConfigPath(path string) {
	if path != "" {
		a.configPath = path
	}
}

// SetLogJSON switches the logger to JSON output if it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// IndexOptions selects which index of the repository an operation works on.
type IndexOptions struct {
	// Metadata selects the metadata index instead of the artifacts index.
	Metadata bool
}

// ListIndex returns the GAVs recorded in the selected index.
func (a *App) ListIndex(_ context.Context, opts IndexOptions) ([]domain.GAV, error) {
	repo, err := a.openRepository()
	if err != nil {
		return nil, err
	}
	return selectIndex(repo, opts).GAVs(), nil
}

// AddToIndex records the given GAVs in the selected index and saves it.
// All GAVs are parsed before the index is touched.
func (a *App) AddToIndex(_ context.Context, gavs []string, opts IndexOptions) error {
	parsed, err := parseGAVs(gavs)
	if err != nil {
		return err
	}

	repo, err := a.openRepository()
	if err != nil {
		return err
	}

	idx := selectIndex(repo, opts)
	for _, gav := range parsed {
		idx.Add(gav)
	}
	if err := idx.Save(); err != nil {
		return zerr.Wrap(err, "failed to add to index")
	}
	return nil
}

// RemoveFromIndex removes the given GAVs from the selected index and saves it.
func (a *App) RemoveFromIndex(_ context.Context, gavs []string, opts IndexOptions) error {
	parsed, err := parseGAVs(gavs)
	if err != nil {
		return err
	}

	repo, err := a.openRepository()
	if err != nil {
		return err
	}

	idx := selectIndex(repo, opts)
	for _, gav := range parsed {
		idx.Remove(gav)
	}
	if err := idx.Save(); err != nil {
		return zerr.Wrap(err, "failed to remove from index")
	}
	return nil
}

// Prune drops index entries whose repository files no longer exist.
func (a *App) Prune(_ context.Context) ([]domain.GAV, error) {
	repo, err := a.openRepository()
	if err != nil {
		return nil, err
	}

	removed, err := repo.Prune()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to prune repository")
	}
	return removed, nil
}

// ArtifactPath resolves where the repository stores an artifact.
func (a *App) ArtifactPath(_ context.Context, gav, classifier, extension string) (string, error) {
	parsed, err := domain.ParseGAV(gav)
	if err != nil {
		return "", err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}

	repo := repository.New(cfg.Repository, nil, nil, a.logger)
	return repo.ArtifactPath(parsed, classifier, extension), nil
}

// FormatOrder returns the descriptors in the order they should be read for mode.
func (a *App) FormatOrder(_ context.Context, mode string, descriptors []string) ([]domain.ArtifactDescriptor, error) {
	usage, err := domain.ParseUsageMode(mode)
	if err != nil {
		return nil, err
	}

	parsed := make([]domain.ArtifactDescriptor, 0, len(descriptors))
	canonical := 0
	for _, s := range descriptors {
		d, err := domain.ParseDescriptor(s)
		if err != nil {
			return nil, err
		}
		if domain.IsCanonical(d.Format) {
			canonical++
		}
		parsed = append(parsed, d)
	}
	if canonical > 1 {
		return nil, zerr.Wrap(domain.ErrMalformedDescriptor, "at most one canonical descriptor is allowed")
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	return format.NewPolicy(usage, cfg.PackedFormatAvailable).OrderForRead(parsed), nil
}

// FilterResult holds the outcome of a filter pass.
type FilterResult struct {
	Kept    []*domain.Unit
	Removed []*domain.Unit
}

// Filter applies the configured filter rules to the units read from unitsPath.
func (a *App) Filter(_ context.Context, unitsPath string) (*FilterResult, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	engine, err := filter.NewEngine(cfg.Filters, a.logger)
	if err != nil {
		return nil, err
	}

	units, err := a.units.LoadUnits(unitsPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load units")
	}

	kept := engine.Filter(units)
	survivors := make(map[*domain.Unit]struct{}, len(kept))
	for _, u := range kept {
		survivors[u] = struct{}{}
	}

	result := &FilterResult{Kept: kept}
	for _, u := range units {
		if _, ok := survivors[u]; !ok {
			result.Removed = append(result.Removed, u)
		}
	}
	return result, nil
}

func (a *App) loadConfig() (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) openRepository() (*repository.LocalRepository, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return repository.Open(cfg.Repository, a.locker, a.logger, index.WithLockTimeout(cfg.LockTimeout))
}

func selectIndex(repo *repository.LocalRepository, opts IndexOptions) ports.ArtifactIndex {
	if opts.Metadata {
		return repo.Metadata()
	}
	return repo.Artifacts()
}

func parseGAVs(values []string) ([]domain.GAV, error) {
	if len(values) == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedGAV, "no GAV given")
	}

	gavs := make([]domain.GAV, 0, len(values))
	var errs error
	for _, v := range values {
		gav, err := domain.ParseGAV(v)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		gavs = append(gavs, gav)
	}
	if errs != nil {
		return nil, errs
	}
	return gavs, nil
}
