// Package plugin wires the bridge into the host's lifecycle: it
// registers the scenario loader at config time and post-processes
// pass/fail reports.
package plugin

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"utb/internal/config"
	"utb/internal/discovery"
	"utb/internal/host"
	"utb/internal/trace"
	"utb/internal/translate"
)

// Modules whose stack frames are noise in a user-visible traceback: the
// legacy engine's internals and the bridge's own plumbing.
var noiseModules = []string{
	"utb/xunit",
	"utb/internal",
}

// Plugin is a pure event-reactive adapter; its only state is the
// configuration it was built with.
type Plugin struct {
	cfg    *config.Config
	filter *trace.Filter
	log    *logrus.Logger
}

// New creates the plugin.
func New(cfg *config.Config, log *logrus.Logger) *Plugin {
	return &Plugin{
		cfg:    cfg,
		filter: trace.NewFilter(noiseModules...),
		log:    log,
	}
}

// Subscribe installs the plugin's event listeners.
func (p *Plugin) Subscribe(d *host.Dispatcher) {
	d.OnConfigLoaded(p.onConfigLoaded).
		OnScenarioPassed(p.onScenarioPassed).
		OnScenarioFailed(p.onScenarioFailed).
		OnExceptionRaised(p.onExceptionRaised)
}

// onConfigLoaded registers the scenario loader factory, bound to the
// host's module loading collaborator.
func (p *Plugin) onConfigLoaded(e host.ConfigLoadedEvent) {
	e.Loaders.Register(func() host.ScenarioLoader {
		return discovery.NewLoader(e.Modules, translate.New(p.cfg.AggregateErrors), p.log)
	})
}

// onScenarioPassed annotates scenarios that passed because they failed
// as expected.
func (p *Plugin) onScenarioPassed(e host.ScenarioPassedEvent) {
	expected := e.Result.Scenario.ExpectedFailure
	if expected == nil {
		return
	}
	e.Result.AddExtraDetails(fmt.Sprintf(
		"Expected Failure: Scenario passed because it failed as expected with %T(%q)",
		expected, expected.Error(),
	))
}

// onScenarioFailed annotates scenarios that failed because they were
// expected to fail but passed.
func (p *Plugin) onScenarioFailed(e host.ScenarioFailedEvent) {
	if e.Result.Scenario.UnexpectedSuccess == nil {
		return
	}
	e.Result.AddExtraDetails(
		"Unexpected Success: Scenario failed because it was expected to fail, but the scenario passed",
	)
}

// onExceptionRaised rewrites the raised error's traceback — and every
// leaf inside an aggregate — so it starts at the legacy test's own
// code. Disabled via configuration.
func (p *Plugin) onExceptionRaised(e host.ExceptionRaisedEvent) {
	if !p.cfg.FilterTracebacks {
		return
	}
	e.Result.Err = p.filter.FilterError(e.Err)
}
