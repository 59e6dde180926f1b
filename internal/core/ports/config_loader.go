package ports

import "go.trai.ch/p2local/internal/core/domain"

// ConfigLoader defines the interface for loading the repository configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	// A missing file yields the default configuration rooted at the file's directory.
	Load(path string) (*domain.Config, error)
}

// UnitSource reads installable units from a file.
type UnitSource interface {
	// LoadUnits parses the units listed in the file at path.
	LoadUnits(path string) ([]*domain.Unit, error)
}
