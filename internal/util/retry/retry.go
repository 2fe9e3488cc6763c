// Package retry provides exponential backoff for collaborator API calls.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type config struct {
	maxAttempts int
	delay       time.Duration
	multiplier  float64
}

// Option is a functional option for retry configuration.
type Option func(*config)

// MaxAttempts sets the total number of attempts, first try included.
func MaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// InitialDelay sets the delay before the first retry.
func InitialDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// Do executes the operation, retrying with exponentially increasing delays.
// Context cancellation is respected between attempts. Errors wrapped with
// Fatal are returned immediately, unwrapped.
func Do(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &config{
		maxAttempts: 3,
		delay:       time.Second,
		multiplier:  2.0,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var lastErr error
	delay := cfg.delay
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		var fatal *fatalError
		if errors.As(err, &fatal) {
			return fatal.err
		}
		lastErr = err

		if attempt == cfg.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * cfg.multiplier)
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", cfg.maxAttempts, lastErr)
}

type fatalError struct {
	err error
}

func (e *fatalError) Error() string {
	return e.err.Error()
}

func (e *fatalError) Unwrap() error {
	return e.err
}

// Fatal marks an error as non-retryable.
func Fatal(err error) error {
	return &fatalError{err: err}
}
