package lock

import (
	"sync"
	"time"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/zerr"
)

// MemoryLocker provides the same contract as FileLocker for callers that share
// one process and need no file system marker.
type MemoryLocker struct {
	opts options

	mu   sync.Mutex
	held map[string]bool
}

var _ ports.Locker = (*MemoryLocker)(nil)

// NewMemoryLocker creates an in-process locker.
func NewMemoryLocker(opts ...Option) *MemoryLocker {
	return &MemoryLocker{
		opts: buildOptions(opts),
		held: make(map[string]bool),
	}
}

// Acquire locks path, waiting at most timeout.
func (l *MemoryLocker) Acquire(path string, timeout time.Duration) (ports.Lock, error) {
	err := waitFor(l.opts, path, timeout, func() error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.held[path] {
			return errBusy
		}
		l.held[path] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &memoryLock{locker: l, path: path}, nil
}

type memoryLock struct {
	locker   *MemoryLocker
	path     string
	released bool
}

func (h *memoryLock) Path() string {
	return h.path
}

func (h *memoryLock) Release() error {
	h.locker.mu.Lock()
	defer h.locker.mu.Unlock()

	if h.released {
		return zerr.With(zerr.Wrap(domain.ErrLockReleased, "lock already released"), "path", h.path)
	}
	h.released = true
	delete(h.locker.held, h.path)
	return nil
}
