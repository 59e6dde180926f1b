//go:build !windows

package lock

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

func lockFile(f *os.File) error {
	// Keep the descriptor out of child processes.
	if flags, err := unix.FcntlInt(f.Fd(), unix.F_GETFD, 0); err == nil {
		_, _ = unix.FcntlInt(f.Fd(), unix.F_SETFD, flags|unix.FD_CLOEXEC)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		if errors.Is(err, unix.EWOULDBLOCK) {
			return errBusy
		}
		return err
	}
	return nil
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

// releaseFile unlocks and closes f. When remove is set the marker is unlinked
// first, while still locked, so a contender that opened the old inode fails its
// identity check instead of sharing the lock.
func releaseFile(f *os.File, markerPath string, remove bool) error {
	var removeErr error
	if remove {
		if err := os.Remove(markerPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			removeErr = err
		}
	}
	return errors.Join(removeErr, unlockFile(f), f.Close())
}
