// Package retry runs collaborator calls under a bounded exponential backoff policy.
package retry

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/errors"
)

// Policy bounds the number of attempts and the backoff between them.
type Policy struct {
	Attempts       int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// NewPolicy builds a policy from configuration. A nil config yields the defaults.
func NewPolicy(cfg *config.RetryConfig) Policy {
	cfg = config.WithRetryDefaults(cfg)

	return Policy{
		Attempts:       cfg.Attempts,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		Multiplier:     2,
	}
}

// Backoff returns the wait before the given retry (1-based).
func (p Policy) Backoff(retry int) time.Duration {
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	wait := float64(p.InitialBackoff)
	for i := 1; i < retry; i++ {
		wait *= multiplier
		if p.MaxBackoff > 0 && time.Duration(wait) >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}

	return time.Duration(wait)
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent marks err so that Do stops retrying and returns it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError

	return errors.As(err, &pe)
}

// Do calls fn until it succeeds, returns a permanent error, the attempts are exhausted,
// or ctx is done. The last error is returned with the permanent marker removed.
func Do(ctx context.Context, policy Policy, logger *slog.Logger, operation string, fn func(ctx context.Context) error) error {
	attempts := max(policy.Attempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}

		var pe *permanentError
		if errors.As(err, &pe) {
			return pe.err
		}

		// The caller's context ended the attempt; another one would fail the same way.
		if ctx.Err() != nil && errors.IsAny(err, context.Canceled, context.DeadlineExceeded) {
			return err
		}

		if attempt == attempts {
			break
		}

		wait := policy.Backoff(attempt)
		if logger != nil {
			logger.Warn("Retrying after failure",
				slog.String("operation", operation),
				slog.Int("attempt", attempt),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return errors.Wrapf(err, "%s interrupted: %v", operation, ctx.Err())
		case <-timer.C:
		}
	}

	return errors.Wrapf(err, "%s failed after %d attempts", operation, attempts)
}
