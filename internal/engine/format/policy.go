// Package format decides in which order the stored formats of an artifact are tried.
package format

import (
	"slices"

	"go.trai.ch/p2local/internal/core/domain"
)

// Policy orders artifact descriptors for reading.
//
// In local-disk mode the canonical format comes first, since decoding a packed
// variant that is already on disk only costs time. In remote-transfer mode the
// packed formats come first to save bandwidth, unless this runtime cannot
// decode packed formats.
type Policy struct {
	mode            domain.UsageMode
	packedAvailable bool
}

// NewPolicy creates a policy for the given usage mode and packed-format support.
func NewPolicy(mode domain.UsageMode, packedAvailable bool) *Policy {
	return &Policy{mode: mode, packedAvailable: packedAvailable}
}

// Mode returns the usage mode the policy optimises for.
func (p *Policy) Mode() domain.UsageMode {
	return p.mode
}

// OrderForRead returns a new slice holding the same descriptors, preferred first.
// Descriptors of equal preference keep their relative order.
func (p *Policy) OrderForRead(descriptors []domain.ArtifactDescriptor) []domain.ArtifactDescriptor {
	ordered := slices.Clone(descriptors)
	slices.SortStableFunc(ordered, func(a, b domain.ArtifactDescriptor) int {
		return p.rank(a) - p.rank(b)
	})
	return ordered
}

// PickFormat returns the most preferred descriptor, or false if there is none.
func (p *Policy) PickFormat(descriptors []domain.ArtifactDescriptor) (domain.ArtifactDescriptor, bool) {
	ordered := p.OrderForRead(descriptors)
	if len(ordered) == 0 {
		return domain.ArtifactDescriptor{}, false
	}
	return ordered[0], true
}

func (p *Policy) canonicalFirst() bool {
	return p.mode == domain.UsageLocalDisk || !p.packedAvailable
}

func (p *Policy) rank(d domain.ArtifactDescriptor) int {
	if domain.IsCanonical(d.Format) == p.canonicalFirst() {
		return 0
	}
	return 1
}
