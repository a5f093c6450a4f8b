// Package xunit is the legacy-style unit test engine the bridge adapts.
// Test cases are structs embedding TestCase; test methods are exported
// methods named Test* taking a single *T argument, e.g.:
//
//	type UserTest struct{ xunit.TestCase }
//
//	func (c *UserTest) SetUp(t *xunit.T)    {} // optional, per method
//	func (c *UserTest) TearDown(t *xunit.T) {} // optional, per method
//
//	func (c *UserTest) TestCreate(t *xunit.T) { t.AssertTrue(true) }
//
// A fresh zero-valued case instance is created for every suite run, so
// per-run state belongs in SetUp, class-wide state in SetUpClass.
package xunit

// TestCase is the embeddable base type every legacy test case must embed.
type TestCase struct{}

func (TestCase) xunitCase() {}

// Case is implemented by embedding TestCase.
type Case interface {
	xunitCase()
}

// ClassSetUp marks a case as carrying a class-level set-up hook. The
// embedded TestCase base deliberately does not implement it, so
// implementing the interface is the "hook is overridden" signal.
type ClassSetUp interface {
	SetUpClass() error
}

// ClassTearDown marks a case as carrying a class-level tear-down hook.
type ClassTearDown interface {
	TearDownClass() error
}

// LoopTestCase is the embeddable base for cases that drive their own
// internal scheduling loop. Such cases must be executed inside a
// dedicated single-use worker so the host scheduler is never asked to
// suspend mid-run.
type LoopTestCase struct {
	TestCase
}

func (LoopTestCase) xunitLoopCase() {}

// LoopCase is implemented by embedding LoopTestCase.
type LoopCase interface {
	Case
	xunitLoopCase()
}

// IsLoopCase reports whether c needs a dedicated execution worker.
func IsLoopCase(c Case) bool {
	_, ok := c.(LoopCase)
	return ok
}
