// Package config provides the configuration loader for p2local.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader and ports.UnitSource using YAML files.
type Loader struct {
	Logger ports.Logger
}

var (
	_ ports.ConfigLoader = (*Loader)(nil)
	_ ports.UnitSource   = (*Loader)(nil)
)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path. A missing file yields the
// defaults with the repository rooted at the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	var file File
	err := readAndUnmarshalYAML(path, &file, domain.ErrConfigReadFailed, domain.ErrConfigParseFailed)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		l.Logger.Info("no " + filepath.Base(path) + " found, using defaults")
	}

	cfg := &domain.Config{
		Repository:  resolveRoot(path, file.Repository),
		LockTimeout: domain.DefaultLockTimeout,
	}

	if file.PackedFormatAvailable != nil {
		cfg.PackedFormatAvailable = *file.PackedFormatAvailable
	}

	if file.LockTimeout != "" {
		d, err := time.ParseDuration(file.LockTimeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "invalid lockTimeout"), "value", file.LockTimeout)
		}
		if d < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTimeout, "invalid lockTimeout"), "value", file.LockTimeout)
		}
		cfg.LockTimeout = d
	}

	rules, err := ReadFilters(file.Filters)
	if err != nil {
		return nil, zerr.With(err, "config", path)
	}
	cfg.Filters = rules

	return cfg, nil
}

// LoadUnits reads a unit set document.
func (l *Loader) LoadUnits(path string) ([]*domain.Unit, error) {
	var file UnitsFile
	if err := readAndUnmarshalYAML(path, &file, domain.ErrUnitsReadFailed, domain.ErrUnitsReadFailed); err != nil {
		return nil, err
	}

	units := make([]*domain.Unit, 0, len(file.Units))
	for i := range file.Units {
		u, err := toUnit(&file.Units[i])
		if err != nil {
			return nil, zerr.With(zerr.With(err, "unit", i), "file", path)
		}
		units = append(units, u)
	}
	return units, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into target.
// A missing file is reported with fs.ErrNotExist in the chain.
func readAndUnmarshalYAML[T any](path string, target *T, readErr, parseErr error) error {
	// #nosec G304 -- path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(readErr, err), "failed to read file"), "path", path)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(parseErr, err), "failed to parse file"), "path", path)
	}

	return nil
}
