// Package retry re-runs fetches that fail with throttling, server errors or
// timeouts, backing off exponentially between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

// Config defines retry behavior with exponential backoff.
type Config struct {
	MaxAttempts          int
	InitialBackoff       time.Duration
	MaxBackoff           time.Duration
	Multiplier           float64
	RetryableStatusCodes []int
}

// DefaultConfig retries three times on 429 and 5xx gateway errors.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: time.Second,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2.0,
		RetryableStatusCodes: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// Do runs fn until it succeeds, returns a permanent error, the attempts run
// out or ctx is done.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				log.Debug().Int("attempts", attempt+1).Msg("Retry succeeded")
			}
			return nil
		}
		lastErr = err

		if !Retryable(err, cfg) {
			return err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		backoff := Backoff(attempt, cfg)
		log.Debug().
			Int("attempt", attempt+1).
			Int("max_attempts", cfg.MaxAttempts).
			Dur("backoff", backoff).
			Err(err).
			Msg("Retrying after backoff")

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	log.Warn().Int("attempts", cfg.MaxAttempts).Err(lastErr).Msg("Max retry attempts exceeded")
	return fmt.Errorf("failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}

// Backoff is InitialBackoff * Multiplier^attempt, capped at MaxBackoff.
func Backoff(attempt int, cfg Config) time.Duration {
	b := float64(cfg.InitialBackoff) * math.Pow(cfg.Multiplier, float64(attempt))
	if cfg.MaxBackoff > 0 && b > float64(cfg.MaxBackoff) {
		b = float64(cfg.MaxBackoff)
	}
	return time.Duration(b)
}

// Retryable reports whether err is worth another attempt. Status errors retry
// only for the configured codes; cancellation never retries.
func Retryable(err error, cfg Config) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var perm *permanentError
	if errors.As(err, &perm) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return slices.Contains(cfg.RetryableStatusCodes, se.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) {
		return timeout.Timeout()
	}
	return true
}

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Status)
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}
