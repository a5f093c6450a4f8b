// Package discovery finds the test cases of a loaded module, decides
// the granularity at which to wrap them, and builds the host-executable
// scenarios.
package discovery

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"utb/internal/collector"
	"utb/internal/domain"
	"utb/internal/execution"
	"utb/internal/host"
	"utb/internal/translate"
	"utb/xunit"
)

// Loader is the scenario loader the plugin registers with the host.
type Loader struct {
	modules    host.ModuleLoader
	translator *translate.Translator
	log        *logrus.Logger
}

// NewLoader creates a Loader bound to the host's module loading
// collaborator.
func NewLoader(modules host.ModuleLoader, translator *translate.Translator, log *logrus.Logger) *Loader {
	return &Loader{modules: modules, translator: translator, log: log}
}

// Load resolves the module behind path and wraps its test cases into
// scenarios. A module-resolution error is propagated untouched; an
// empty module yields an empty list, never an error.
func (l *Loader) Load(ctx context.Context, path string) ([]*domain.Scenario, error) {
	module, err := l.modules.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	scenarios := l.collect(module)
	l.log.WithFields(logrus.Fields{"module": module.Name, "scenarios": len(scenarios)}).Debug("module loaded")
	return scenarios, nil
}

// collect applies the granularity rules: any module-level hook collapses
// the whole module into one scenario; a class-level hook collapses that
// class; everything else is wrapped per method.
func (l *Loader) collect(module *xunit.Module) []*domain.Scenario {
	suite := xunit.LoadModule(module)

	if module.HasLifecycleHooks() {
		return []*domain.Scenario{l.build(suite, buildSpec{
			name:        "Scenario_UnitTestSuite",
			subject:     "All tests in module '" + module.Name + "'",
			file:        module.File,
			granularity: domain.PerModule,
		})}
	}

	var scenarios []*domain.Scenario
	for _, class := range suite.Children() {
		// A class with zero discoverable test methods yields zero
		// scenarios, not an empty one.
		if class.CountUnits() == 0 {
			continue
		}
		if class.HasClassHooks() {
			scenarios = append(scenarios, l.build(class, buildSpec{
				name:        "Scenario_" + class.ClassName(),
				subject:     "All tests in class '" + class.ClassName() + "'",
				file:        module.File,
				granularity: domain.PerClass,
			}))
			continue
		}
		for _, unit := range class.Units() {
			scenarios = append(scenarios, l.build(unit, buildSpec{
				name:        "Scenario_" + unit.CaseName() + "_" + unit.MethodName(),
				subject:     "[" + unit.CaseName() + "] " + strings.ReplaceAll(unit.MethodName(), "_", " "),
				file:        module.File,
				granularity: domain.PerMethod,
			}))
		}
	}
	return scenarios
}

// buildSpec carries the computed identification fields of one scenario.
type buildSpec struct {
	name        string
	subject     string
	file        string
	granularity domain.Granularity
}

// build produces the scenario descriptor for one runnable. The body
// executes the runnable through a fresh collector and hands the result
// to the translator; loop-driving cases run inside a dedicated worker.
func (l *Loader) build(r xunit.Runnable, spec buildSpec) *domain.Scenario {
	scn := &domain.Scenario{
		Name:        spec.name,
		Subject:     spec.subject,
		File:        spec.file,
		Granularity: spec.granularity,
	}
	scn.Do = func(ctx context.Context) error {
		col := collector.New()
		var err error
		if r.NeedsWorker() {
			err = execution.NewWorker().Run(ctx, r, col)
		} else {
			err = r.Run(ctx, col)
		}
		if err != nil {
			return err
		}
		return l.translator.Translate(scn, col)
	}

	if skipped, reason := skipDecision(r, spec.granularity); skipped {
		return host.Skip(reason)(scn)
	}
	return scn
}

// skipDecision resolves the build-time skip state: a per-method
// scenario follows its unit's marker verbatim; a collapsed scenario is
// skipped only when every contained unit is marked, under a fixed
// generic reason.
func skipDecision(r xunit.Runnable, granularity domain.Granularity) (bool, string) {
	units := r.Units()
	if granularity == domain.PerMethod {
		return units[0].SkipMarker()
	}
	if len(units) == 0 {
		return false, ""
	}
	for _, u := range units {
		if skipped, _ := u.SkipMarker(); !skipped {
			return false, ""
		}
	}
	return true, "All tests are skipped"
}
