package retry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = 2 * time.Millisecond
	return cfg
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		if calls < 3 {
			return &StatusError{StatusCode: http.StatusServiceUnavailable, Status: "503"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentStatusStops(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		return &StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found", URL: "http://x"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 404, se.StatusCode)
}

func TestDo_GivesUp(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		return fmt.Errorf("dial: %w", &StatusError{StatusCode: http.StatusTooManyRequests})
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig()
	cfg.InitialBackoff = time.Hour
	cfg.MaxBackoff = time.Hour

	err := Do(ctx, cfg, func(context.Context) error {
		cancel()
		return errors.New("connection reset")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	cfg := Config{InitialBackoff: time.Second, MaxBackoff: 5 * time.Second, Multiplier: 2}
	assert.Equal(t, time.Second, Backoff(0, cfg))
	assert.Equal(t, 2*time.Second, Backoff(1, cfg))
	assert.Equal(t, 4*time.Second, Backoff(2, cfg))
	assert.Equal(t, 5*time.Second, Backoff(3, cfg))
}

func TestRetryable(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, Retryable(nil, cfg))
	assert.False(t, Retryable(context.Canceled, cfg))
	assert.True(t, Retryable(context.DeadlineExceeded, cfg))
	assert.True(t, Retryable(&StatusError{StatusCode: 502}, cfg))
	assert.False(t, Retryable(&StatusError{StatusCode: 403}, cfg))
	assert.True(t, Retryable(errors.New("connection reset by peer"), cfg))

	base := errors.New("not html")
	perm := fmt.Errorf("fetch: %w", Permanent(base))
	assert.False(t, Retryable(perm, cfg))
	assert.ErrorIs(t, perm, base)
	assert.NoError(t, Permanent(nil))
}
