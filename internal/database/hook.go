package database

import (
	"context"
	"log/slog"
	"time"
)

// Hook observes persistence operations. Stores run every query through
// Observe; there is no driver-level interception.
type Hook interface {
	Before(ctx context.Context, op string) context.Context
	After(ctx context.Context, op string, d time.Duration, err error)
}

// Observe runs fn, notifying each hook before and after.
func Observe(ctx context.Context, hooks []Hook, op string, fn func(context.Context) error) error {
	for _, h := range hooks {
		ctx = h.Before(ctx, op)
	}

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	for _, h := range hooks {
		h.After(ctx, op, elapsed, err)
	}

	return err
}

// SlogHook logs each operation with its duration and outcome.
type SlogHook struct {
	Logger *slog.Logger
}

func (h SlogHook) Before(ctx context.Context, _ string) context.Context { return ctx }

func (h SlogHook) After(ctx context.Context, op string, d time.Duration, err error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err != nil {
		logger.ErrorContext(ctx, "query failed", "op", op, "duration", d, "error", err)
		return
	}

	logger.DebugContext(ctx, "query", "op", op, "duration", d)
}
