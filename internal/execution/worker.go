package execution

import (
	"context"
	"fmt"

	"utb/xunit"
)

// Worker runs one runnable inside a dedicated single-use goroutine.
// It exists for loop-driving cases: their internal scheduling must
// never run on the host's own cooperative scheduler, so the host blocks
// exactly once, here, until the isolated run completes.
type Worker struct{}

// NewWorker creates a single-use worker.
func NewWorker() *Worker {
	return &Worker{}
}

// Run executes r in its own goroutine and blocks until it finishes.
// Cancellation is propagated back unswallowed: once ctx is done the
// worker stops waiting and returns ctx.Err(); the engine itself also
// aborts between units via the same context.
func (w *Worker) Run(ctx context.Context, r xunit.Runnable, col xunit.Collector) error {
	done := make(chan error, 1)
	go func() {
		done <- w.run(ctx, r, col)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run(ctx context.Context, r xunit.Runnable, col xunit.Collector) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("isolated test run panicked: %v", p)
		}
	}()
	return r.Run(ctx, col)
}
