// Package lock implements timeout-bounded exclusive locks on data files.
package lock

import (
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPollInterval is how often a busy lock is retried.
const DefaultPollInterval = 50 * time.Millisecond

// errBusy reports that a single attempt found the lock held.
var errBusy = errors.New("lock busy")

// Option configures a locker.
type Option func(*options)

type options struct {
	clock clockwork.Clock
	poll  time.Duration
}

// WithClock sets the clock used to measure timeouts.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithPollInterval sets the retry interval for busy locks.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.poll = d
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock(), poll: DefaultPollInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// waitFor calls try until it succeeds, fails with an error other than errBusy,
// or timeout has elapsed on clock. A zero timeout makes exactly one attempt.
func waitFor(o options, path string, timeout time.Duration, try func() error) error {
	if err := validateTimeout(timeout); err != nil {
		return err
	}

	start := o.clock.Now()
	for {
		err := try()
		if !errors.Is(err, errBusy) {
			return err
		}
		if o.clock.Since(start) >= timeout {
			err := zerr.With(zerr.Wrap(domain.ErrLockTimeout, "failed to acquire lock"), "path", path)
			return zerr.With(err, "timeout", timeout.String())
		}
		o.clock.Sleep(o.poll)
	}
}

func validateTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTimeout, "lock timeout must not be negative"), "timeout", timeout.String())
	}
	return nil
}

// WithLock runs fn while holding the lock for path. The lock is released on every
// exit path, and a release failure is reported alongside fn's error.
func WithLock(locker ports.Locker, path string, timeout time.Duration, fn func() error) (err error) {
	l, err := locker.Acquire(path, timeout)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := l.Release(); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()

	return fn()
}
