package xunit

import "reflect"

// Module is a named, file-associated, ordered collection of test case
// registrations. It is the Go analog of a loaded legacy test module;
// module-level lifecycle hooks live here as explicit fields so hook
// resolution never goes through a process-global name table.
type Module struct {
	// Name is the canonical module name, e.g. "tests.user".
	Name string
	// File is the absolute path of the source associated with the module.
	File string
	// SetUp, when set, runs once before every case in the module.
	SetUp func() error
	// TearDown, when set, runs once after every case in the module.
	TearDown func() error

	cases []*CaseReg
}

// NewModule creates an empty module.
func NewModule(name, file string) *Module {
	return &Module{Name: name, File: file}
}

// Add registers a test case in definition order and returns its
// registration for attaching markers.
func (m *Module) Add(c Case) *CaseReg {
	reg := newCaseReg(c)
	m.cases = append(m.cases, reg)
	return reg
}

// Cases returns the case registrations in definition order.
func (m *Module) Cases() []*CaseReg {
	return m.cases
}

// HasLifecycleHooks reports whether a module-level set-up or tear-down
// hook is present. Any module hook collapses the whole module into a
// single scenario.
func (m *Module) HasLifecycleHooks() bool {
	return m.SetUp != nil || m.TearDown != nil
}

// skipMarker records a skip decoration and its reason.
type skipMarker struct {
	reason string
}

// CaseReg is one registered test case plus its markers. Markers are the
// Go analog of unittest's skip / expectedFailure decorators and are
// attached at module definition time, before any test runs.
type CaseReg struct {
	value Case

	caseSkip    *skipMarker
	methodSkips map[string]*skipMarker
	expectFail  map[string]bool
}

func newCaseReg(c Case) *CaseReg {
	return &CaseReg{
		value:       c,
		methodSkips: make(map[string]*skipMarker),
		expectFail:  make(map[string]bool),
	}
}

// Skip marks the whole case as skipped.
func (r *CaseReg) Skip(reason string) *CaseReg {
	r.caseSkip = &skipMarker{reason: reason}
	return r
}

// SkipMethod marks a single test method as skipped. A method marker
// takes precedence over a case-level one.
func (r *CaseReg) SkipMethod(method, reason string) *CaseReg {
	r.methodSkips[method] = &skipMarker{reason: reason}
	return r
}

// ExpectFailure marks the given test methods as expected to fail.
func (r *CaseReg) ExpectFailure(methods ...string) *CaseReg {
	for _, m := range methods {
		r.expectFail[m] = true
	}
	return r
}

// Case returns the registered case value.
func (r *CaseReg) Case() Case { return r.value }

// ClassName returns the case's type name.
func (r *CaseReg) ClassName() string {
	return reflect.TypeOf(r.value).Elem().Name()
}

// HasClassHooks reports whether the case overrides a class-level
// set-up or tear-down hook. Detection is an interface assertion: the
// embedded TestCase base implements neither, so implementing one means
// the hook is the case's own.
func (r *CaseReg) HasClassHooks() bool {
	if _, ok := r.value.(ClassSetUp); ok {
		return true
	}
	_, ok := r.value.(ClassTearDown)
	return ok
}

// skipFor resolves the effective skip marker for a method: the method
// marker wins over the case marker.
func (r *CaseReg) skipFor(method string) (bool, string) {
	if m, ok := r.methodSkips[method]; ok {
		return true, m.reason
	}
	if r.caseSkip != nil {
		return true, r.caseSkip.reason
	}
	return false, ""
}

// expectsFailure reports whether a method carries the expected-failure
// marker.
func (r *CaseReg) expectsFailure(method string) bool {
	return r.expectFail[method]
}
