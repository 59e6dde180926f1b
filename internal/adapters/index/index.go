// Package index implements the repository index: a set of artifact identities
// persisted as a flat text file and shared between processes.
package index

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/p2local/internal/adapters/lock"
	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileIndex is a ports.ArtifactIndex backed by one GAV per line.
//
// Mutations are recorded as pending changes. Save re-reads the file under the
// lock and re-applies the pending changes on top, so writers in other processes
// that touch different entries do not lose each other's work.
type FileIndex struct {
	path    string
	locker  ports.Locker
	logger  ports.Logger
	timeout time.Duration

	mu             sync.Mutex
	entries        *gavSet
	pendingAdds    *gavSet
	pendingRemoves *gavSet
}

var _ ports.ArtifactIndex = (*FileIndex)(nil)

// Option configures a FileIndex.
type Option func(*FileIndex)

// WithLockTimeout bounds how long Open and Save wait for the file lock.
func WithLockTimeout(d time.Duration) Option {
	return func(x *FileIndex) {
		x.timeout = d
	}
}

// Open loads the index at path. A missing file yields an empty index; the file
// is created by the first Save.
func Open(path string, locker ports.Locker, logger ports.Logger, opts ...Option) (*FileIndex, error) {
	x := &FileIndex{
		path:           path,
		locker:         locker,
		logger:         logger,
		timeout:        domain.DefaultLockTimeout,
		entries:        newGAVSet(),
		pendingAdds:    newGAVSet(),
		pendingRemoves: newGAVSet(),
	}
	for _, opt := range opts {
		opt(x)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return x, nil
		}
		return nil, indexIOError(err, "failed to stat index", path)
	}

	err := lock.WithLock(locker, path, x.timeout, func() error {
		data, err := readIndexFile(path)
		if err != nil {
			return err
		}
		x.entries = decode(data, path, logger)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return x, nil
}

// Path returns the backing file.
func (x *FileIndex) Path() string {
	return x.path
}

// GAVs returns the entries in insertion order.
func (x *FileIndex) GAVs() []domain.GAV {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.entries.slice()
}

// Contains reports whether gav is in the in-memory view.
func (x *FileIndex) Contains(gav domain.GAV) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.entries.contains(gav)
}

// Len returns the number of entries.
func (x *FileIndex) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.entries.len()
}

// Pending returns the number of unsaved additions and removals.
func (x *FileIndex) Pending() (adds, removes int) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.pendingAdds.len(), x.pendingRemoves.len()
}

// Add records gav. Adding an entry whose removal is pending cancels the removal.
func (x *FileIndex) Add(gav domain.GAV) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries.add(gav)
	if !x.pendingRemoves.remove(gav) {
		x.pendingAdds.add(gav)
	}
}

// Remove drops gav. Removing an entry whose addition is pending cancels the addition.
func (x *FileIndex) Remove(gav domain.GAV) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries.remove(gav)
	if !x.pendingAdds.remove(gav) {
		x.pendingRemoves.add(gav)
	}
}

// Save reconciles with the file and writes the merged set.
//
// Under the lock the current file content replaces the in-memory base set and
// the pending changes are applied on top. The result is written to a temporary
// file and renamed over the index. On failure the file and the pending changes
// are left as they were.
func (x *FileIndex) Save() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	return lock.WithLock(x.locker, x.path, x.timeout, func() error {
		onDisk, err := readIndexFile(x.path)
		if err != nil {
			return err
		}

		merged := decode(onDisk, x.path, x.logger)
		for _, gav := range x.pendingRemoves.order {
			merged.remove(gav)
		}
		for _, gav := range x.pendingAdds.order {
			merged.add(gav)
		}

		content := encode(merged)
		if onDisk == nil || xxhash.Sum64(content) != xxhash.Sum64(onDisk) {
			if err := writeAtomic(x.path, content); err != nil {
				return err
			}
		}

		x.entries = merged
		x.pendingAdds = newGAVSet()
		x.pendingRemoves = newGAVSet()
		return nil
	})
}

// readIndexFile returns the file content, or nil if it does not exist.
func readIndexFile(path string) ([]byte, error) {
	//nolint:gosec // index paths come from the repository layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, indexIOError(err, "failed to read index", path)
	}
	return data, nil
}

// writeAtomic replaces path with content through a temporary file in the same directory.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return indexIOError(err, "failed to create index directory", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return indexIOError(err, "failed to create temporary index", path)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return indexIOError(err, "failed to write temporary index", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return indexIOError(err, "failed to set index permissions", path)
	}
	if err := tmp.Close(); err != nil {
		return indexIOError(err, "failed to close temporary index", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return indexIOError(err, "failed to replace index", path)
	}

	success = true
	return nil
}

func indexIOError(cause error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrIndexIO, cause), msg), "path", path)
}
