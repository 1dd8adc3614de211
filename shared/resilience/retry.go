package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

type RetryConfig struct {
	MaxAttempts        uint
	InitialDelay       time.Duration
	MaxDelay           time.Duration
	UseProviderBackoff bool
	BackoffMultiplier  float64
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:        3,
		InitialDelay:       500 * time.Millisecond,
		MaxDelay:           5 * time.Second,
		UseProviderBackoff: true,
		BackoffMultiplier:  2,
	}
}

type RetryHook interface {
	OnRetryAttempt(ctx context.Context, attempt uint, err error, nextDelay time.Duration)
	OnRetrySuccess(ctx context.Context, attempts uint, totalDuration time.Duration)
	OnRetryFailure(ctx context.Context, err error, attempts uint, totalDuration time.Duration)
}

// RetryableError marks an error as transient. RetryAfter is the delay the
// remote asked for and is only honored with UseProviderBackoff.
type RetryableError struct {
	Err        error
	RetryAfter time.Duration
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// Retry runs fn until it succeeds, returns a non retryable error or the
// attempts are exhausted. Only errors wrapped in RetryableError are retried.
func Retry[T any](ctx context.Context, config RetryConfig, hook RetryHook, fn func() (T, error)) (T, error) {
	expBackoff := backoff.NewExponentialBackOff()
	if config.InitialDelay > 0 {
		expBackoff.InitialInterval = config.InitialDelay
	}
	if config.MaxDelay > 0 {
		expBackoff.MaxInterval = config.MaxDelay
	}
	if config.BackoffMultiplier > 0 {
		expBackoff.Multiplier = config.BackoffMultiplier
	}

	maxAttempts := config.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 1
	}

	start := time.Now()
	var (
		attempts uint
		lastErr  error
	)

	operation := func() (T, error) {
		attempts++
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		var retryable *RetryableError
		if !errors.As(err, &retryable) {
			return result, backoff.Permanent(err)
		}

		if config.UseProviderBackoff && retryable.RetryAfter > 0 {
			return result, backoff.RetryAfter(int(retryable.RetryAfter.Seconds()))
		}
		return result, err
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			if hook != nil {
				hook.OnRetryAttempt(ctx, attempts, err, next)
			}
		}),
	)

	// a RetryAfterError carries only the delay, report the error behind it
	var retryAfter *backoff.RetryAfterError
	if errors.As(err, &retryAfter) && lastErr != nil {
		err = lastErr
	}

	if hook != nil {
		if err != nil {
			hook.OnRetryFailure(ctx, err, attempts, time.Since(start))
		} else if attempts > 1 {
			hook.OnRetrySuccess(ctx, attempts, time.Since(start))
		}
	}

	return result, err
}
