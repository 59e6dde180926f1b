package domain

import "go.trai.ch/zerr"

var (
	// ErrLockTimeout is returned when a lock could not be acquired within the requested window.
	ErrLockTimeout = zerr.New("timed out waiting for lock")

	// ErrInvalidTimeout is returned when a lock is requested with a negative timeout.
	ErrInvalidTimeout = zerr.New("lock timeout must not be negative")

	// ErrLockReleased is returned when a lock handle is released more than once.
	ErrLockReleased = zerr.New("lock already released")

	// ErrLockFailed is returned when the lock marker file cannot be opened or locked.
	ErrLockFailed = zerr.New("failed to lock marker file")

	// ErrIndexIO is returned when the index file cannot be read or written.
	ErrIndexIO = zerr.New("index file i/o failed")

	// ErrMalformedGAV is returned when a string is not of the form group:artifact:version.
	ErrMalformedGAV = zerr.New("malformed artifact identity, expected group:artifact:version")

	// ErrInvalidVersion is returned when a version string is not a valid OSGi version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidVersionRange is returned when a version range string cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrPatternSyntax is returned when a capability pattern carries an invalid version or version range.
	ErrPatternSyntax = zerr.New("invalid capability pattern")

	// ErrUnknownCapabilityType is returned when a filter type string is not recognised.
	ErrUnknownCapabilityType = zerr.New("non-recognized capability type")

	// ErrInvalidFilterRule is returned when a filter rule has no action or an unknown one.
	ErrInvalidFilterRule = zerr.New("invalid filter rule")

	// ErrFilterConfig is returned when the filter configuration is structurally invalid.
	ErrFilterConfig = zerr.New("invalid filter configuration")

	// ErrUnknownUsageMode is returned when a usage mode string is neither "local" nor "remote".
	ErrUnknownUsageMode = zerr.New("unknown usage mode, expected 'local' or 'remote'")

	// ErrMalformedDescriptor is returned when an artifact descriptor string cannot be parsed.
	ErrMalformedDescriptor = zerr.New("malformed artifact descriptor, expected classifier,id,version[@format]")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnitsReadFailed is returned when a unit set file cannot be read or parsed.
	ErrUnitsReadFailed = zerr.New("failed to read unit set")

	// ErrRepositoryOpenFailed is returned when the local repository indices cannot be opened.
	ErrRepositoryOpenFailed = zerr.New("failed to open local repository")
)
