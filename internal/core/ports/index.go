package ports

import "go.trai.ch/p2local/internal/core/domain"

// ArtifactIndex is a persistent set of artifact identities shared between processes.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type ArtifactIndex interface {
	// GAVs returns the entries in insertion order.
	GAVs() []domain.GAV

	// Contains reports whether gav is in the in-memory view.
	Contains(gav domain.GAV) bool

	// Add records gav for the next Save.
	Add(gav domain.GAV)

	// Remove drops gav. Removing an absent entry still records the removal for Save.
	Remove(gav domain.GAV)

	// Len returns the number of entries.
	Len() int

	// Path returns the backing file.
	Path() string

	// Save merges pending changes with the current on-disk content and writes the result.
	Save() error
}
