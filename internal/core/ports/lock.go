package ports

import "time"

// Lock is an exclusive lock held on a data file.
type Lock interface {
	// Path returns the data file the lock protects.
	Path() string

	// Release gives up the lock. Releasing twice returns domain.ErrLockReleased.
	Release() error
}

// Locker acquires exclusive locks on data files.
// The lock is exclusive across processes and across goroutines of one process.
//
//go:generate mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type Locker interface {
	// Acquire blocks until the lock for path is held or timeout elapses.
	// A zero timeout tries exactly once. A negative timeout is rejected.
	Acquire(path string, timeout time.Duration) (Lock, error)
}
