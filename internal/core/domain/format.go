package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ArtifactKey identifies a logical artifact independent of its stored encoding.
type ArtifactKey struct {
	Classifier string
	ID         string
	Version    string
}

// String returns classifier,id,version.
func (k ArtifactKey) String() string {
	return k.Classifier + "," + k.ID + "," + k.Version
}

// Format is the stored encoding of an artifact: CanonicalFormat or PackedFormat.
type Format interface {
	// Tag returns the format tag; the canonical format has none.
	Tag() string
}

// CanonicalFormat is the uncompressed, directly usable encoding.
type CanonicalFormat struct{}

// PackedFormat is a derived encoding that is smaller but must be decoded before use.
type PackedFormat struct {
	Name string
}

// Tag implements Format.
func (CanonicalFormat) Tag() string { return "" }

// Tag implements Format.
func (f PackedFormat) Tag() string { return f.Name }

// ParseFormat maps a format tag to a Format. The empty tag is canonical.
func ParseFormat(tag string) Format {
	if tag == "" {
		return CanonicalFormat{}
	}
	return PackedFormat{Name: tag}
}

// IsCanonical reports whether f is the canonical format.
func IsCanonical(f Format) bool {
	switch f.(type) {
	case CanonicalFormat, nil:
		return true
	default:
		return false
	}
}

// ArtifactDescriptor describes one stored encoding of an artifact.
type ArtifactDescriptor struct {
	Key    ArtifactKey
	Format Format
}

// String returns classifier,id,version with an @tag suffix for non-canonical formats.
func (d ArtifactDescriptor) String() string {
	if IsCanonical(d.Format) {
		return d.Key.String()
	}
	return d.Key.String() + "@" + d.Format.Tag()
}

// ParseDescriptor parses classifier,id,version[@tag].
func ParseDescriptor(s string) (ArtifactDescriptor, error) {
	keyPart, tag, _ := strings.Cut(s, "@")
	fields := strings.Split(keyPart, ",")
	if len(fields) != 3 {
		return ArtifactDescriptor{}, zerr.With(zerr.Wrap(ErrMalformedDescriptor, "failed to parse descriptor"), "value", s)
	}
	return ArtifactDescriptor{
		Key:    ArtifactKey{Classifier: fields[0], ID: fields[1], Version: fields[2]},
		Format: ParseFormat(tag),
	}, nil
}

// UsageMode selects how read order is optimised.
type UsageMode uint8

const (
	// UsageLocalDisk prefers the canonical format already on disk.
	UsageLocalDisk UsageMode = iota
	// UsageRemoteTransfer prefers the smaller packed formats.
	UsageRemoteTransfer
)

// ParseUsageMode maps "local" or "remote" to a UsageMode.
func ParseUsageMode(s string) (UsageMode, error) {
	switch s {
	case "local":
		return UsageLocalDisk, nil
	case "remote":
		return UsageRemoteTransfer, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownUsageMode, "failed to parse usage mode"), "mode", s)
	}
}

// String returns "local" or "remote".
func (m UsageMode) String() string {
	if m == UsageRemoteTransfer {
		return "remote"
	}
	return "local"
}
