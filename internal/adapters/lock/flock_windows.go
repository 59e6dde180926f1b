//go:build windows

package lock

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

func lockFile(f *os.File) error {
	var ol windows.Overlapped
	err := windows.LockFileEx(windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0,
		1,
		0,
		&ol,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return errBusy
		}
		return err
	}
	return nil
}

func unlockFile(f *os.File) error {
	var ol windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, 1, 0, &ol)
}

// releaseFile unlocks and closes f, then removes the marker. Open files cannot
// be deleted on Windows, and a marker still in use elsewhere stays in place.
func releaseFile(f *os.File, markerPath string, remove bool) error {
	err := errors.Join(unlockFile(f), f.Close())
	if remove {
		_ = os.Remove(markerPath)
	}
	return err
}
