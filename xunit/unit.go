package xunit

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/multierr"

	"utb/internal/trace"
)

// Unit is one test method bound to its case registration. It is
// produced by LoadCase and immutable afterwards.
type Unit struct {
	reg      *CaseReg
	caseName string
	name     string

	method   *reflect.Method
	setUp    *reflect.Method
	tearDown *reflect.Method

	skipped    bool
	skipReason string
	expectFail bool

	synthetic bool
}

// newSyntheticUnit builds a unit that stands in for a broken lifecycle
// hook in collector callbacks.
func newSyntheticUnit(caseName, name string) *Unit {
	return &Unit{caseName: caseName, name: name, synthetic: true}
}

// CaseName returns the owning case's type name (or the module name for
// synthetic module-hook units).
func (u *Unit) CaseName() string { return u.caseName }

// MethodName returns the bound test method's name.
func (u *Unit) MethodName() string { return u.name }

// String identifies the unit as Case.Method.
func (u *Unit) String() string { return u.caseName + "." + u.name }

// SkipMarker returns the build-time skip decision and its reason.
func (u *Unit) SkipMarker() (bool, string) { return u.skipped, u.skipReason }

// NeedsWorker reports whether the owning case drives its own loop.
func (u *Unit) NeedsWorker() bool {
	return u.reg != nil && IsLoopCase(u.reg.value)
}

// Units lets a single unit satisfy Runnable.
func (u *Unit) Units() []*Unit { return []*Unit{u} }

// Run executes the unit on a fresh case instance.
func (u *Unit) Run(ctx context.Context, col Collector) error {
	inst := reflect.New(reflect.TypeOf(u.reg.value).Elem())
	return u.runOn(ctx, inst, col)
}

// runOn executes the unit on the given case instance: SetUp, the test
// method, TearDown, then exactly one outcome callback (plus one per
// subtest and at most one extra for a broken TearDown).
func (u *Unit) runOn(ctx context.Context, inst reflect.Value, col Collector) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.skipped {
		col.OnSkip(u, u.skipReason)
		return nil
	}

	t := newT(ctx, u, col)

	if u.setUp != nil {
		if err := protect(func() { u.setUp.Func.Call([]reflect.Value{inst, reflect.ValueOf(t)}) }); err != nil {
			var skip *SkipError
			if errors.As(err, &skip) {
				col.OnSkip(u, skip.Reason)
			} else {
				col.OnError(u, trace.WithStack(err))
			}
			return nil
		}
	}

	bodyErr := protect(func() { u.method.Func.Call([]reflect.Value{inst, reflect.ValueOf(t)}) })
	if len(t.failures) > 0 {
		var skip *SkipError
		switch {
		case bodyErr == nil:
			bodyErr = multierr.Combine(t.failures...)
		case errors.As(bodyErr, &skip):
			// A runtime skip discards recorded failures, like the
			// skip precedence in report.
		default:
			// Failures recorded before a fatal stop keep encounter order.
			bodyErr = multierr.Combine(append(t.failures, bodyErr)...)
		}
	}

	var tearDownErr error
	if u.tearDown != nil {
		tearDownErr = protect(func() { u.tearDown.Func.Call([]reflect.Value{inst, reflect.ValueOf(t)}) })
	}

	u.report(col, bodyErr)
	if tearDownErr != nil {
		col.OnError(u, trace.WithStack(tearDownErr))
	}
	return nil
}

// report translates the body outcome into the single collector callback
// the legacy result vocabulary expects.
func (u *Unit) report(col Collector, bodyErr error) {
	var skip *SkipError
	if errors.As(bodyErr, &skip) {
		// A runtime skip wins even over the expected-failure marker.
		col.OnSkip(u, skip.Reason)
		return
	}

	if u.expectFail {
		if bodyErr != nil {
			col.OnExpectedFailure(u, trace.WithStack(bodyErr))
			return
		}
		col.OnUnexpectedSuccess(u, &UnexpectedSuccessError{Unit: u.String()})
		return
	}

	if bodyErr == nil {
		col.OnSuccess(u)
		return
	}
	var failure *FailureError
	if errors.As(bodyErr, &failure) {
		col.OnFailure(u, trace.WithStack(bodyErr))
		return
	}
	col.OnError(u, trace.WithStack(bodyErr))
}

// protect runs fn, converting a panic into an error. Errors panicked by
// T helpers pass through unchanged so their captured stacks survive.
func protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = pkgerrors.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}

// protectErr runs an error-returning hook under panic protection.
func protectErr(fn func() error) error {
	var hookErr error
	if err := protect(func() { hookErr = fn() }); err != nil {
		return err
	}
	return hookErr
}

var _ Runnable = (*Unit)(nil)
var _ Runnable = (*Suite)(nil)
var _ fmt.Stringer = (*Unit)(nil)
