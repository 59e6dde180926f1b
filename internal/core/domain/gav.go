package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// GAV identifies one artifact by group, artifact and version.
// It is a comparable value type and can be used as a map key.
type GAV struct {
	Group    string
	Artifact string
	Version  string
}

// NewGAV creates a GAV from its three segments.
func NewGAV(group, artifact, version string) GAV {
	return GAV{Group: group, Artifact: artifact, Version: version}
}

// String returns the canonical external form group:artifact:version.
// Colons and backslashes inside group and artifact are escaped so that ParseGAV
// restores the same value.
func (g GAV) String() string {
	var b strings.Builder
	b.Grow(len(g.Group) + len(g.Artifact) + len(g.Version) + 2)
	writeEscaped(&b, g.Group)
	b.WriteByte(':')
	writeEscaped(&b, g.Artifact)
	b.WriteByte(':')
	b.WriteString(g.Version)
	return b.String()
}

// ParseGAV splits s on its first two unescaped colons.
// Everything after the second colon is the version, verbatim.
func ParseGAV(s string) (GAV, error) {
	var (
		segments [2]strings.Builder
		seg      int
		escaped  bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			segments[seg].WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == ':':
			if seg == 1 {
				return GAV{
					Group:    segments[0].String(),
					Artifact: segments[1].String(),
					Version:  s[i+1:],
				}, nil
			}
			seg++
		default:
			segments[seg].WriteByte(c)
		}
	}

	return GAV{}, zerr.With(zerr.Wrap(ErrMalformedGAV, "failed to parse artifact identity"), "value", s)
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
}
