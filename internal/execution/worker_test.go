package execution

import (
	"context"
	"testing"
	"time"

	"utb/internal/collector"
	"utb/xunit"
)

// fakeRunnable implements xunit.Runnable for worker tests.
type fakeRunnable struct {
	run func(ctx context.Context, col xunit.Collector) error
}

func (r *fakeRunnable) Run(ctx context.Context, col xunit.Collector) error { return r.run(ctx, col) }
func (r *fakeRunnable) Units() []*xunit.Unit                               { return nil }
func (r *fakeRunnable) NeedsWorker() bool                                  { return true }

func TestWorker_RunsToCompletion(t *testing.T) {
	ran := false
	r := &fakeRunnable{run: func(context.Context, xunit.Collector) error {
		ran = true
		return nil
	}}

	if err := NewWorker().Run(context.Background(), r, collector.New()); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("the runnable must execute inside the worker")
	}
}

func TestWorker_RecoversPanic(t *testing.T) {
	r := &fakeRunnable{run: func(context.Context, xunit.Collector) error {
		panic("loop exploded")
	}}

	err := NewWorker().Run(context.Background(), r, collector.New())
	if err == nil {
		t.Fatal("a panicking runnable must surface as an error")
	}
}

func TestWorker_CancellationUnblocksCaller(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	r := &fakeRunnable{run: func(context.Context, xunit.Collector) error {
		<-release
		return nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := NewWorker().Run(ctx, r, collector.New())
	if err != context.DeadlineExceeded {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}
