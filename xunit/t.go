package xunit

import (
	"context"
	"fmt"
	"io"
)

// Output receives T.Log output. Defaults to discarding; the CLI points
// it at stderr in verbose mode.
var Output io.Writer = io.Discard

// T is the per-method handle passed to test methods and method-scope
// hooks.
type T struct {
	ctx  context.Context
	unit *Unit
	col  Collector

	failures []error
}

func newT(ctx context.Context, unit *Unit, col Collector) *T {
	return &T{ctx: ctx, unit: unit, col: col}
}

// Context returns the context the run was started with.
func (t *T) Context() context.Context { return t.ctx }

// Fatal records an assertion failure and stops the test method.
func (t *T) Fatal(args ...interface{}) {
	panic(newFailure("%s", fmt.Sprint(args...)))
}

// Fatalf records a formatted assertion failure and stops the test method.
func (t *T) Fatalf(format string, args ...interface{}) {
	panic(newFailure(format, args...))
}

// Error records an assertion failure and lets the test method continue.
func (t *T) Error(args ...interface{}) {
	t.failures = append(t.failures, newFailure("%s", fmt.Sprint(args...)))
}

// Errorf records a formatted failure and lets the test method continue.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failures = append(t.failures, newFailure(format, args...))
}

// Skip aborts the test method and marks it skipped.
func (t *T) Skip(reason string) {
	panic(&SkipError{Reason: reason})
}

// Skipf aborts the test method with a formatted skip reason.
func (t *T) Skipf(format string, args ...interface{}) {
	panic(&SkipError{Reason: fmt.Sprintf(format, args...)})
}

// Log writes a line to the engine's log output.
func (t *T) Log(args ...interface{}) {
	fmt.Fprintln(Output, args...)
}

// Logf writes a formatted line to the engine's log output.
func (t *T) Logf(format string, args ...interface{}) {
	fmt.Fprintf(Output, format+"\n", args...)
}

// Run executes fn as an independently reported subtest. A failing
// subtest is reported through the collector but never short-circuits
// the parent method or sibling subtests.
func (t *T) Run(name string, fn func(*T)) bool {
	sub := newSyntheticUnit(t.unit.caseName, t.unit.name+"/"+name)
	st := newT(t.ctx, sub, t.col)

	err := protect(func() { fn(st) })
	if err == nil && len(st.failures) > 0 {
		err = st.failures[0]
		for _, extra := range st.failures[1:] {
			err = fmt.Errorf("%w; %v", err, extra)
		}
	}
	t.col.OnSubTest(t.unit, sub, err)
	return err == nil
}
