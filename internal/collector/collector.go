// Package collector accumulates legacy engine callbacks into typed
// outcome buckets instead of the engine's default textual report.
package collector

import (
	"utb/xunit"
)

// Entry pairs a unit with the error recorded for it.
type Entry struct {
	Unit *xunit.Unit
	Err  error
}

// Collector intercepts every per-unit callback of one suite or unit
// run. Exactly one instance is used per scenario body invocation and
// never reused, so no state leaks between scenarios.
type Collector struct {
	// Exceptions holds failures, errors, skip signals and failed
	// subtests in encounter order. Any entry here fails the scenario.
	Exceptions []Entry
	// ExpectedFailures holds units that failed as announced.
	ExpectedFailures []Entry
	// UnexpectedSuccesses holds units that passed although announced to
	// fail.
	UnexpectedSuccesses []Entry
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{}
}

// OnSuccess records nothing: the host treats "no outcome recorded" as a
// pass.
func (c *Collector) OnSuccess(*xunit.Unit) {}

// OnFailure records a failed assertion.
func (c *Collector) OnFailure(unit *xunit.Unit, err error) {
	c.Exceptions = append(c.Exceptions, Entry{Unit: unit, Err: err})
}

// OnError records an unhandled panic or broken hook.
func (c *Collector) OnError(unit *xunit.Unit, err error) {
	c.Exceptions = append(c.Exceptions, Entry{Unit: unit, Err: err})
}

// OnSkip records a skip raised at run time as a failure-shaped signal;
// it fails the owning scenario like any other raised outcome.
func (c *Collector) OnSkip(unit *xunit.Unit, reason string) {
	c.Exceptions = append(c.Exceptions, Entry{Unit: unit, Err: &xunit.SkipError{Reason: reason}})
}

// OnSubTest records a failed subtest; passing subtests leave no trace.
func (c *Collector) OnSubTest(_, subtest *xunit.Unit, err error) {
	if err == nil {
		return
	}
	c.Exceptions = append(c.Exceptions, Entry{Unit: subtest, Err: err})
}

// OnExpectedFailure records a unit that failed as announced.
func (c *Collector) OnExpectedFailure(unit *xunit.Unit, err error) {
	c.ExpectedFailures = append(c.ExpectedFailures, Entry{Unit: unit, Err: err})
}

// OnUnexpectedSuccess records a unit that passed although announced to
// fail.
func (c *Collector) OnUnexpectedSuccess(unit *xunit.Unit, err error) {
	c.UnexpectedSuccesses = append(c.UnexpectedSuccesses, Entry{Unit: unit, Err: err})
}

var _ xunit.Collector = (*Collector)(nil)
