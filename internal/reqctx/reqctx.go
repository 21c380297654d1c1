// Package reqctx carries a run identifier through a context so every log line
// and index row from one invocation can be tied together.
package reqctx

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type key int

const runKey key = 0

// Run identifies one CLI invocation.
type Run struct {
	ID        string
	StartTime time.Time
}

// WithRun attaches a fresh run to ctx. An existing run is kept.
func WithRun(ctx context.Context) context.Context {
	if _, ok := ctx.Value(runKey).(*Run); ok {
		return ctx
	}
	return context.WithValue(ctx, runKey, &Run{ID: uuid.NewString(), StartTime: time.Now()})
}

// FromContext returns the run on ctx, or an "unknown" placeholder.
func FromContext(ctx context.Context) *Run {
	if r, ok := ctx.Value(runKey).(*Run); ok {
		return r
	}
	return &Run{ID: "unknown", StartTime: time.Now()}
}

// ID is shorthand for FromContext(ctx).ID.
func ID(ctx context.Context) string {
	return FromContext(ctx).ID
}

// Logger returns the global logger with the run id attached.
func Logger(ctx context.Context) *zerolog.Logger {
	l := log.With().Str("run_id", ID(ctx)).Logger()
	return &l
}

// Error tags err with the run id.
type Error struct {
	RunID string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %v", e.RunID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with the run on ctx; nil stays nil.
func Wrap(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &Error{RunID: ID(ctx), Err: err}
}
