package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// PatternSpec holds the unparsed attributes of a capability pattern.
// Empty fields are unconstrained.
type PatternSpec struct {
	Namespace    Namespace
	ID           string
	Version      string
	VersionRange string
}

// CapabilityPattern matches capabilities by namespace, id and version or version range.
// Construct it with NewCapabilityPattern so version strings are validated up front.
type CapabilityPattern struct {
	spec         PatternSpec
	version      *Version
	versionRange *VersionRange
}

// NewCapabilityPattern parses the version attributes of spec.
// At most one of Version and VersionRange may be set.
func NewCapabilityPattern(spec PatternSpec) (CapabilityPattern, error) {
	p := CapabilityPattern{spec: spec}

	if spec.Version != "" && spec.VersionRange != "" {
		return CapabilityPattern{}, zerr.With(
			zerr.Wrap(ErrPatternSyntax, "version and versionRange are mutually exclusive"),
			"pattern", spec.String(),
		)
	}

	if spec.Version != "" {
		v, err := ParseVersion(spec.Version)
		if err != nil {
			return CapabilityPattern{}, patternFieldError(err, "version", spec.Version)
		}
		p.version = &v
	}

	if spec.VersionRange != "" {
		r, err := ParseVersionRange(spec.VersionRange)
		if err != nil {
			return CapabilityPattern{}, patternFieldError(err, "versionRange", spec.VersionRange)
		}
		p.versionRange = &r
	}

	return p, nil
}

// MustCapabilityPattern is like NewCapabilityPattern but panics on error. Intended for literals.
func MustCapabilityPattern(spec PatternSpec) CapabilityPattern {
	p, err := NewCapabilityPattern(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// Namespace returns the namespace constraint, or "" if unconstrained.
func (p CapabilityPattern) Namespace() Namespace {
	return p.spec.Namespace
}

// ID returns the id constraint, or "" if unconstrained.
func (p CapabilityPattern) ID() string {
	return p.spec.ID
}

// Spec returns the attributes the pattern was built from.
func (p CapabilityPattern) Spec() PatternSpec {
	return p.spec
}

// InheritFrom fills an unset namespace and an unset id from scope.
// Version constraints are never inherited: a restriction only examines units
// that already satisfied the scope, so they would hold trivially.
func (p CapabilityPattern) InheritFrom(scope CapabilityPattern) CapabilityPattern {
	if p.spec.Namespace == "" {
		p.spec.Namespace = scope.spec.Namespace
	}
	if p.spec.ID == "" {
		p.spec.ID = scope.spec.ID
	}
	return p
}

// MatchesID reports whether id satisfies the id constraint.
func (p CapabilityPattern) MatchesID(id string) bool {
	return p.spec.ID == "" || p.spec.ID == id
}

// MatchesVersion reports whether v satisfies the exact version and version range constraints.
func (p CapabilityPattern) MatchesVersion(v Version) bool {
	if p.version != nil && !p.version.Equal(v) {
		return false
	}
	if p.versionRange != nil && !p.versionRange.Includes(v) {
		return false
	}
	return true
}

// String renders the set members, e.g. type=osgi-bundle, id="a.b", version="1.0.0".
func (p CapabilityPattern) String() string {
	return p.spec.String()
}

// String renders the set members of the spec.
func (s PatternSpec) String() string {
	members := make([]string, 0, 4)
	if s.Namespace != "" {
		members = append(members, "type="+s.Namespace.TypeName())
	}
	if s.ID != "" {
		members = append(members, `id="`+s.ID+`"`)
	}
	if s.Version != "" {
		members = append(members, `version="`+s.Version+`"`)
	}
	if s.VersionRange != "" {
		members = append(members, `versionRange="`+s.VersionRange+`"`)
	}
	return strings.Join(members, ", ")
}

func patternFieldError(cause error, field, value string) error {
	err := zerr.Wrap(errors.Join(ErrPatternSyntax, cause), "failed to parse "+field)
	return zerr.With(zerr.With(err, "field", field), "value", value)
}
