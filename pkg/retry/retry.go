package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config holds retry configuration
type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultConfig returns a short policy suited to request-path storage calls.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	}
}

// Do runs fn until it succeeds, MaxAttempts is reached or ctx is done.
// Context errors returned by fn are not retried.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	return DoWithLog(ctx, cfg, fn, nil)
}

// DoWithLog is Do with a callback invoked before each retry.
func DoWithLog(ctx context.Context, cfg Config, fn func() error, logFn func(err error, nextDelay time.Duration)) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	policy := backoff.NewExponentialBackOff()
	if cfg.InitialDelay > 0 {
		policy.InitialInterval = cfg.InitialDelay
	}
	if cfg.MaxDelay > 0 {
		policy.MaxInterval = cfg.MaxDelay
	}
	policy.MaxElapsedTime = 0

	bounded := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(cfg.MaxAttempts-1)), ctx)

	operation := func() error {
		err := fn()
		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if logFn != nil {
		notify = func(err error, next time.Duration) { logFn(err, next) }
	}

	return backoff.RetryNotify(operation, bounded, notify)
}
