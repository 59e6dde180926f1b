//go:build !windows

package lock_test

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/p2local/internal/adapters/lock"
	"go.trai.ch/p2local/internal/core/domain"
)

const helperEnv = "P2LOCAL_LOCK_HELPER_PATH"

// TestHelperHoldLock runs only inside the child process started by
// TestFileLocker_CrossProcess. It holds the lock until stdin is closed.
func TestHelperHoldLock(t *testing.T) {
	path := os.Getenv(helperEnv)
	if path == "" {
		t.Skip("helper process only")
	}

	l, err := lock.NewFileLocker().Acquire(path, 0)
	if err != nil {
		t.Fatalf("helper failed to lock: %v", err)
	}
	_, _ = os.Stdout.WriteString("locked\n")

	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	if err := l.Release(); err != nil {
		t.Fatalf("helper failed to release: %v", err)
	}
}

func TestFileLocker_CrossProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index")

	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperHoldLock$")
	cmd.Env = append(os.Environ(), helperEnv+"="+path)
	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	scanner := bufio.NewScanner(stdout)
	locked := false
	for scanner.Scan() {
		if scanner.Text() == "locked" {
			locked = true
			break
		}
	}
	require.True(t, locked, "helper never reported holding the lock")

	locker := lock.NewFileLocker()
	_, err = locker.Acquire(path, 0)
	require.ErrorIs(t, err, domain.ErrLockTimeout)

	require.NoError(t, stdin.Close())
	_, _ = io.Copy(io.Discard, stdout)
	require.NoError(t, cmd.Wait())
	assert.NoFileExists(t, domain.LockPathFor(path))

	l, err := locker.Acquire(path, 0)
	require.NoError(t, err)
	require.NoError(t, l.Release())
}
