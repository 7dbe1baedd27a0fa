package asynchandler

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Invocation describes one finished call of a Wrapped function.
type Invocation struct {
	ID       uuid.UUID
	Name     string
	Outcome  Outcome
	Err      error // original failure, nil on success
	Duration time.Duration
}

// Observer receives every finished invocation.
// Observe runs on the invoking goroutine before the Wrapped function returns.
type Observer interface {
	Observe(ctx context.Context, inv Invocation)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx context.Context, inv Invocation)

// Observe calls f(ctx, inv).
func (f ObserverFunc) Observe(ctx context.Context, inv Invocation) {
	f(ctx, inv)
}
