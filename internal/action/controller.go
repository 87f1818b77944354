// Package action gates the dashboard's long-running add-user operation
// behind a busy flag: at most one invocation is in flight, failures are
// logged and swallowed, and busy always clears on completion.
package action

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

// Outcome reports how an invocation ended.
type Outcome int

const (
	// Rejected means another invocation was already in flight.
	Rejected Outcome = iota
	// Failed means the operation ran and errored; the error was logged and
	// the collection left unchanged.
	Failed
	// Completed means the operation succeeded and its result was committed.
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return "completed"
	}
}

// Controller serializes one external operation. The busy flag is readable
// while the operation is in flight; a mutex guards it because the operation
// completes on a command goroutine, not the program loop.
type Controller struct {
	mu   sync.Mutex
	busy bool
	log  *slog.Logger
}

// New creates a controller.
func New(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{log: logger}
}

// Busy reports whether an invocation is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// TryBegin admits a new invocation. It returns false, without blocking or
// queueing, when one is already in flight.
func (c *Controller) TryBegin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

// End clears the busy flag. Every admitted invocation must end exactly once.
func (c *Controller) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

// Run executes an admitted operation, committing the result on success. The
// busy flag clears on every return path. Failures are logged and reported
// in the outcome, never rethrown.
func (c *Controller) Run(ctx context.Context, op func(context.Context) (roster.User, error), commit func(roster.User)) Outcome {
	defer c.End()

	u, err := op(ctx)
	if err != nil {
		c.log.Error("add user failed", "error", err)
		return Failed
	}
	commit(u)
	return Completed
}

// Invoke is TryBegin followed by Run: the full busy-gate contract in one
// call, for callers that do not need to observe the pending window.
func (c *Controller) Invoke(ctx context.Context, op func(context.Context) (roster.User, error), commit func(roster.User)) Outcome {
	if !c.TryBegin() {
		return Rejected
	}
	return c.Run(ctx, op, commit)
}
