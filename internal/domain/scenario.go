package domain

import "context"

// Scenario is the host-compatible wrapper built around a legacy unit,
// case, or module. It is a plain descriptor record: the builder fills
// in the identification fields once and a generic executor invokes Do.
type Scenario struct {
	// Name is the generated unique scenario identifier, e.g.
	// "Scenario_UserTest_TestCreate".
	Name string
	// Subject is the human-readable description shown in reports.
	Subject string
	// File is the absolute path of the originating module.
	File string
	// Granularity records the wrapping strategy the scenario was built
	// with.
	Granularity Granularity

	// Skipped marks a build-time skip; the body of a skipped scenario
	// is never executed. SkipReason may be empty.
	Skipped    bool
	SkipReason string

	// Do runs the wrapped unit(s) and returns the translated outcome.
	Do func(ctx context.Context) error

	// ExpectedFailure is set during the body run when a unit marked
	// expected-to-fail indeed failed; the scenario still passes and the
	// recorded error is quoted in the report.
	ExpectedFailure error
	// UnexpectedSuccess is set when a unit marked expected-to-fail
	// passed; the scenario fails with this error.
	UnexpectedSuccess error
}

// ScenarioGroup holds the scenarios discovered for one module path.
type ScenarioGroup struct {
	Path      string
	Scenarios []*Scenario
}

