package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnknownBackend reports a Config.Backend that Open does not know.
	ErrUnknownBackend = errors.New("unknown cache backend")

	// ErrUnavailable reports a remote backend that did not answer during Open.
	ErrUnavailable = errors.New("cache backend unavailable")
)

// RetryableError marks a transient failure, such as a refused connection
// while Redis or MongoDB is still starting.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether any error in err's chain is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryDelay is the first backoff interval; tests shorten it.
var retryDelay = time.Second

const retryAttempts = 3

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable
// error, or retryAttempts calls have failed. The wait doubles after each
// failure and is cut short by ctx.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait *= 2
	}
}
