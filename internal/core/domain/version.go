package domain

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Version is an OSGi-style version: major.minor.micro with an optional qualifier.
// The zero value is 0.0.0.
type Version struct {
	num       *semver.Version
	qualifier string
}

// NewVersion creates a version from its numeric segments and qualifier.
func NewVersion(major, minor, micro uint64, qualifier string) Version {
	return Version{num: semver.New(major, minor, micro, "", ""), qualifier: qualifier}
}

// ParseVersion parses major[.minor[.micro[.qualifier]]].
// Numeric segments must be decimal digits; the qualifier may contain letters,
// digits, '_' and '-'.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, invalidVersion(s, "empty version")
	}

	parts := strings.SplitN(trimmed, ".", 4)
	var nums [3]uint64
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := parseSegment(parts[i])
		if err != nil {
			return Version{}, invalidVersion(s, err.Error())
		}
		nums[i] = n
	}

	var qualifier string
	if len(parts) == 4 {
		qualifier = parts[3]
		if !validQualifier(qualifier) {
			return Version{}, invalidVersion(s, "invalid qualifier")
		}
	}

	return NewVersion(nums[0], nums[1], nums[2], qualifier), nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for literals.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Major returns the major segment.
func (v Version) Major() uint64 {
	if v.num == nil {
		return 0
	}
	return v.num.Major()
}

// Minor returns the minor segment.
func (v Version) Minor() uint64 {
	if v.num == nil {
		return 0
	}
	return v.num.Minor()
}

// Micro returns the micro segment.
func (v Version) Micro() uint64 {
	if v.num == nil {
		return 0
	}
	return v.num.Patch()
}

// Qualifier returns the qualifier, or "" if none.
func (v Version) Qualifier() string {
	return v.qualifier
}

// Compare returns -1, 0 or 1. Numeric segments are compared first, then the
// qualifier lexically; an empty qualifier sorts first.
func (v Version) Compare(o Version) int {
	if c := v.semver().Compare(o.semver()); c != 0 {
		return c
	}
	return strings.Compare(v.qualifier, o.qualifier)
}

// Equal reports whether both versions denote the same value.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// String renders the version in its normalized form, e.g. 1.0.0 or 1.0.0.v20240101.
func (v Version) String() string {
	s := strconv.FormatUint(v.Major(), 10) + "." +
		strconv.FormatUint(v.Minor(), 10) + "." +
		strconv.FormatUint(v.Micro(), 10)
	if v.qualifier != "" {
		s += "." + v.qualifier
	}
	return s
}

func (v Version) semver() *semver.Version {
	if v.num == nil {
		return semver.New(0, 0, 0, "", "")
	}
	return v.num
}

// VersionRange is an interval of versions. A range without an upper bound
// includes every version at or above Min.
type VersionRange struct {
	Min        Version
	Max        Version
	IncludeMin bool
	IncludeMax bool
	Unbounded  bool
}

// AtLeast returns the range [v, infinity).
func AtLeast(v Version) VersionRange {
	return VersionRange{Min: v, IncludeMin: true, Unbounded: true}
}

// ParseVersionRange parses an OSGi range such as "[1.0.0,2)", "(1,2]" or a bare
// version "1.0", which means "at least 1.0".
func ParseVersionRange(s string) (VersionRange, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return VersionRange{}, invalidRange(s, "empty range")
	}

	first := trimmed[0]
	if first != '[' && first != '(' {
		v, err := ParseVersion(trimmed)
		if err != nil {
			return VersionRange{}, invalidRange(s, "invalid version")
		}
		return AtLeast(v), nil
	}

	last := trimmed[len(trimmed)-1]
	if last != ']' && last != ')' {
		return VersionRange{}, invalidRange(s, "missing closing bracket")
	}

	bounds := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(bounds) != 2 {
		return VersionRange{}, invalidRange(s, "expected exactly two bounds")
	}

	minV, err := ParseVersion(bounds[0])
	if err != nil {
		return VersionRange{}, invalidRange(s, "invalid lower bound")
	}
	maxV, err := ParseVersion(bounds[1])
	if err != nil {
		return VersionRange{}, invalidRange(s, "invalid upper bound")
	}
	if minV.Compare(maxV) > 0 {
		return VersionRange{}, invalidRange(s, "lower bound exceeds upper bound")
	}

	return VersionRange{
		Min:        minV,
		Max:        maxV,
		IncludeMin: first == '[',
		IncludeMax: last == ']',
	}, nil
}

// Includes reports whether v lies within the range.
func (r VersionRange) Includes(v Version) bool {
	c := v.Compare(r.Min)
	if c < 0 || (c == 0 && !r.IncludeMin) {
		return false
	}
	if r.Unbounded {
		return true
	}
	c = v.Compare(r.Max)
	return c < 0 || (c == 0 && r.IncludeMax)
}

// String renders the range in OSGi notation.
func (r VersionRange) String() string {
	if r.Unbounded && r.IncludeMin {
		return r.Min.String()
	}
	var b strings.Builder
	if r.IncludeMin {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.Min.String())
	b.WriteByte(',')
	b.WriteString(r.Max.String())
	if r.IncludeMax {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

func parseSegment(s string) (uint64, error) {
	if s == "" {
		return 0, zerr.New("empty numeric segment")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, zerr.With(zerr.New("non-numeric segment"), "segment", s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, zerr.Wrap(err, "numeric segment out of range")
	}
	return n, nil
}

func validQualifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

func invalidVersion(value, reason string) error {
	return zerr.With(zerr.Wrap(ErrInvalidVersion, reason), "value", value)
}

func invalidRange(value, reason string) error {
	return zerr.With(zerr.Wrap(ErrInvalidVersionRange, reason), "value", value)
}
