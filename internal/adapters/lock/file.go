package lock

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileLocker locks a data file through an OS advisory lock on a sibling
// marker file named <data file>.lock.
//
// Locks are not re-entrant: a second Acquire for a path already held by this
// process waits like any other contender. The marker is deleted when the last
// in-process user of the path, holder or waiter, is done with it.
type FileLocker struct {
	opts options

	mu      sync.Mutex
	markers map[string]*marker
}

type marker struct {
	refs int
	held bool
}

var _ ports.Locker = (*FileLocker)(nil)

// NewFileLocker creates a cross-process locker.
func NewFileLocker(opts ...Option) *FileLocker {
	return &FileLocker{
		opts:    buildOptions(opts),
		markers: make(map[string]*marker),
	}
}

// Acquire locks path, waiting at most timeout.
func (l *FileLocker) Acquire(path string, timeout time.Duration) (ports.Lock, error) {
	if err := validateTimeout(timeout); err != nil {
		return nil, err
	}

	markerPath := domain.LockPathFor(path)
	if err := os.MkdirAll(filepath.Dir(markerPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLockFailed, err), "failed to create lock directory"), "path", path)
	}

	l.retain(markerPath)

	var f *os.File
	err := waitFor(l.opts, path, timeout, func() error {
		var tryErr error
		f, tryErr = l.tryLock(markerPath)
		return tryErr
	})
	if err != nil {
		l.mu.Lock()
		l.dropLocked(markerPath)
		l.mu.Unlock()
		return nil, err
	}

	return &fileLock{locker: l, path: path, markerPath: markerPath, f: f}, nil
}

func (l *FileLocker) retain(markerPath string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.markers[markerPath]
	if !ok {
		m = &marker{}
		l.markers[markerPath] = m
	}
	m.refs++
}

// dropLocked releases one reference and reports whether it was the last. Callers hold l.mu.
func (l *FileLocker) dropLocked(markerPath string) bool {
	m := l.markers[markerPath]
	m.refs--
	if m.refs > 0 {
		return false
	}
	delete(l.markers, markerPath)
	return true
}

func (l *FileLocker) tryLock(markerPath string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.markers[markerPath].held {
		return nil, errBusy
	}

	f, err := os.OpenFile(markerPath, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLockFailed, err), "failed to open lock marker"), "marker", markerPath)
	}

	if err := lockFile(f); err != nil {
		_ = f.Close()
		if errors.Is(err, errBusy) {
			return nil, errBusy
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLockFailed, err), "failed to lock marker"), "marker", markerPath)
	}

	// A previous holder may have unlinked the marker between our open and lock.
	if !sameFile(f, markerPath) {
		_ = unlockFile(f)
		_ = f.Close()
		return nil, errBusy
	}

	l.markers[markerPath].held = true
	return f, nil
}

func sameFile(f *os.File, path string) bool {
	opened, err := f.Stat()
	if err != nil {
		return false
	}
	current, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(opened, current)
}

type fileLock struct {
	locker     *FileLocker
	path       string
	markerPath string

	mu sync.Mutex
	f  *os.File
}

func (h *fileLock) Path() string {
	return h.path
}

func (h *fileLock) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.f == nil {
		return zerr.With(zerr.Wrap(domain.ErrLockReleased, "lock already released"), "path", h.path)
	}

	l := h.locker
	l.mu.Lock()
	l.markers[h.markerPath].held = false
	last := l.dropLocked(h.markerPath)
	err := releaseFile(h.f, h.markerPath, last)
	l.mu.Unlock()
	h.f = nil

	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrLockFailed, err), "failed to release lock"), "path", h.path)
	}
	return nil
}
