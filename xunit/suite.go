package xunit

import (
	"context"
	"reflect"
	"strings"

	"utb/internal/trace"
)

// Runnable is either a single bound unit or an ordered suite of them.
type Runnable interface {
	// Run executes everything under this node, reporting each unit's
	// outcome to the collector. The returned error is reserved for
	// cancellation; test outcomes never surface here.
	Run(ctx context.Context, col Collector) error
	// Units returns the flattened, ordered units below this node.
	Units() []*Unit
	// NeedsWorker reports whether any contained case drives its own
	// internal loop and must run inside a dedicated worker.
	NeedsWorker() bool
}

// Suite is an ordered container of units (class suite) or of nested
// class suites (module suite).
type Suite struct {
	module   *Module
	class    *CaseReg
	children []*Suite
	units    []*Unit
}

var tParam = reflect.TypeOf((*T)(nil))

// LoadCase builds the suite for one registered case: every exported
// Test* method with a single *T parameter becomes a unit. Methods
// promoted from an embedded case type are discovered too, so
// subclassing a case re-runs the inherited methods under the subclass.
// Units run in Go's reflection order, which is alphabetical — the same
// order the legacy engines sort test methods into.
func LoadCase(reg *CaseReg) *Suite {
	typ := reflect.TypeOf(reg.value)
	s := &Suite{class: reg}

	var setUp, tearDown *reflect.Method
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if m.Type.NumIn() != 2 || m.Type.In(1) != tParam {
			continue
		}
		switch m.Name {
		case "SetUp":
			setUp = &m
		case "TearDown":
			tearDown = &m
		}
	}

	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Test") {
			continue
		}
		if m.Type.NumIn() != 2 || m.Type.In(1) != tParam {
			continue
		}
		skipped, reason := reg.skipFor(m.Name)
		s.units = append(s.units, &Unit{
			reg:        reg,
			caseName:   reg.ClassName(),
			name:       m.Name,
			method:     &m,
			setUp:      setUp,
			tearDown:   tearDown,
			skipped:    skipped,
			skipReason: reason,
			expectFail: reg.expectsFailure(m.Name),
		})
	}
	return s
}

// LoadModule builds the module suite: one nested class suite per case
// registration, in definition order.
func LoadModule(m *Module) *Suite {
	s := &Suite{module: m}
	for _, reg := range m.Cases() {
		s.children = append(s.children, LoadCase(reg))
	}
	return s
}

// Children returns the nested class suites of a module suite.
func (s *Suite) Children() []*Suite { return s.children }

// ClassName returns the case name of a class suite, or "" for a module
// suite.
func (s *Suite) ClassName() string {
	if s.class == nil {
		return ""
	}
	return s.class.ClassName()
}

// HasClassHooks reports whether a class suite's case overrides a
// class-level hook.
func (s *Suite) HasClassHooks() bool {
	return s.class != nil && s.class.HasClassHooks()
}

// Units returns the flattened, ordered units of the suite.
func (s *Suite) Units() []*Unit {
	if s.units != nil {
		return s.units
	}
	var all []*Unit
	for _, child := range s.children {
		all = append(all, child.Units()...)
	}
	return all
}

// CountUnits returns the number of units below this node.
func (s *Suite) CountUnits() int { return len(s.Units()) }

// NeedsWorker reports whether any contained case is a loop case.
func (s *Suite) NeedsWorker() bool {
	for _, u := range s.Units() {
		if u.NeedsWorker() {
			return true
		}
	}
	return false
}

// Run executes the suite. For a module suite the module hooks bracket
// all nested class suites; a broken hook surfaces as an error on a
// synthetic unit and suppresses the bracketed tests, matching the
// legacy engine's contract.
func (s *Suite) Run(ctx context.Context, col Collector) error {
	if s.module != nil {
		return s.runModule(ctx, col)
	}
	return s.runClass(ctx, col)
}

func (s *Suite) runModule(ctx context.Context, col Collector) error {
	m := s.module
	if m.SetUp != nil {
		if err := protectErr(m.SetUp); err != nil {
			col.OnError(newSyntheticUnit(m.Name, "SetUpModule"), trace.WithStack(err))
			return nil
		}
	}
	for _, child := range s.children {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := child.Run(ctx, col); err != nil {
			return err
		}
	}
	if m.TearDown != nil {
		if err := protectErr(m.TearDown); err != nil {
			col.OnError(newSyntheticUnit(m.Name, "TearDownModule"), trace.WithStack(err))
		}
	}
	return nil
}

func (s *Suite) runClass(ctx context.Context, col Collector) error {
	// One fresh instance per suite run, shared by the suite's units so
	// class-level hooks can prepare state for them.
	inst := reflect.New(reflect.TypeOf(s.class.value).Elem())
	caseVal := inst.Interface()

	if cs, ok := caseVal.(ClassSetUp); ok {
		if err := protectErr(cs.SetUpClass); err != nil {
			col.OnError(newSyntheticUnit(s.ClassName(), "SetUpClass"), trace.WithStack(err))
			return nil
		}
	}
	for _, u := range s.units {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := u.runOn(ctx, inst, col); err != nil {
			return err
		}
	}
	if ct, ok := caseVal.(ClassTearDown); ok {
		if err := protectErr(ct.TearDownClass); err != nil {
			col.OnError(newSyntheticUnit(s.ClassName(), "TearDownClass"), trace.WithStack(err))
		}
	}
	return nil
}
