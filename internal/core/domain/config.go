package domain

import "time"

// Config is the resolved project configuration.
type Config struct {
	// Repository is the local repository root directory.
	Repository string

	// LockTimeout bounds how long index operations wait for the file lock.
	LockTimeout time.Duration

	// PackedFormatAvailable reports whether packed formats can be decoded by this runtime.
	PackedFormatAvailable bool

	// Filters are applied in order to unit sets.
	Filters []FilterRule
}
