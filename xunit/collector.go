package xunit

// Collector receives one callback per unit outcome while a suite or
// unit runs. Implementations classify outcomes instead of letting the
// engine report them directly.
type Collector interface {
	// OnSuccess is fired for a unit that completed without incident.
	OnSuccess(unit *Unit)
	// OnFailure is fired for a failed assertion.
	OnFailure(unit *Unit, err error)
	// OnError is fired for an unhandled panic or a broken hook.
	OnError(unit *Unit, err error)
	// OnSkip is fired for a skipped unit; reason may be empty.
	OnSkip(unit *Unit, reason string)
	// OnSubTest is fired once per subtest iteration; err is nil for a
	// passing subtest. Subtest failures never short-circuit siblings.
	OnSubTest(parent, subtest *Unit, err error)
	// OnExpectedFailure is fired when a unit marked expected-to-fail
	// indeed failed.
	OnExpectedFailure(unit *Unit, err error)
	// OnUnexpectedSuccess is fired when a unit marked expected-to-fail
	// passed instead.
	OnUnexpectedSuccess(unit *Unit, err error)
}
