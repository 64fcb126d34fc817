package poll

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when a condition did not become ready before the
// configured timeout.
var ErrTimeout = errors.New("timed out waiting for readiness")

// Condition reports whether the awaited state has been reached.
// A non-nil error stops polling immediately.
type Condition func(ctx context.Context) (bool, error)

// Config holds polling configuration.
type Config struct {
	Interval time.Duration
	Timeout  time.Duration
	// OnAttempt is called after every evaluation that did not finish polling.
	OnAttempt func(attempt int)
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// WithOnAttempt registers a callback invoked after each not-ready attempt.
func WithOnAttempt(fn func(attempt int)) Option {
	return func(c *Config) {
		c.OnAttempt = fn
	}
}

// Until evaluates cond every interval until it returns true.
//
// Errors returned by cond are passed through unchanged and are never
// retried. When timeout elapses the returned error wraps ErrTimeout; when ctx
// is cancelled it wraps ctx.Err(). A non-positive timeout means the context
// alone bounds the wait.
func Until(ctx context.Context, interval, timeout time.Duration, cond Condition, opts ...Option) error {
	cfg := &Config{
		Interval: interval,
		Timeout:  timeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", cfg.Interval)
	}

	var deadline <-chan time.Time
	if cfg.Timeout > 0 {
		timer := time.NewTimer(cfg.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("polling cancelled after %d attempts: %w", attempt-1, err)
		}

		ready, err := cond(ctx)
		if err != nil {
			return err
		}
		if ready {
			return nil
		}

		if cfg.OnAttempt != nil {
			cfg.OnAttempt(attempt)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("polling cancelled after %d attempts: %w", attempt, ctx.Err())
		case <-deadline:
			return fmt.Errorf("%w after %v (%d attempts)", ErrTimeout, cfg.Timeout, attempt)
		case <-ticker.C:
		}
	}
}

// IsTimeout reports whether err is a polling timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
