// Package bridge wires the full pipeline together: plugin registration
// at config time, scenario discovery through the registered loader, and
// sequential execution into a report.
package bridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"utb/internal/config"
	"utb/internal/discovery"
	"utb/internal/domain"
	"utb/internal/execution"
	"utb/internal/host"
	"utb/internal/plugin"
)

// Session is one configured bridge instance. Creating a session fires
// the config-loaded event, which makes the plugin install the scenario
// loader.
type Session struct {
	cfg        *config.Config
	log        *logrus.Logger
	registry   *host.ModuleRegistry
	dispatcher *host.Dispatcher
	loader     host.ScenarioLoader
	filter     *discovery.Filter
}

// NewSession creates a session over the given module registry.
func NewSession(cfg *config.Config, registry *host.ModuleRegistry) *Session {
	log := cfg.Logger()
	dispatcher := host.NewDispatcher()
	plugin.New(cfg, log).Subscribe(dispatcher)

	loaders := host.NewLoaderRegistry()
	dispatcher.FireConfigLoaded(host.ConfigLoadedEvent{Loaders: loaders, Modules: registry})

	return &Session{
		cfg:        cfg,
		log:        log,
		registry:   registry,
		dispatcher: dispatcher,
		loader:     loaders.Loader(),
		filter:     discovery.NewFilter(),
	}
}

// Discover loads every registered module and returns its scenarios,
// grouped per module path in registration order and narrowed by the
// configured name filter.
func (s *Session) Discover(ctx context.Context) ([]domain.ScenarioGroup, error) {
	if s.loader == nil {
		return nil, fmt.Errorf("no scenario loader registered")
	}
	var groups []domain.ScenarioGroup
	for _, path := range s.registry.Paths() {
		scenarios, err := s.loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		scenarios = s.filter.FilterByName(scenarios, s.cfg.NameFilter)
		if len(scenarios) == 0 {
			continue
		}
		groups = append(groups, domain.ScenarioGroup{Path: path, Scenarios: scenarios})
	}
	return groups, nil
}

// Run discovers and executes all scenarios. progress may be nil.
func (s *Session) Run(ctx context.Context, progress execution.Progress) (*domain.Report, error) {
	groups, err := s.Discover(ctx)
	if err != nil {
		return nil, err
	}

	var scenarios []*domain.Scenario
	for _, g := range groups {
		scenarios = append(scenarios, g.Scenarios...)
	}

	report := domain.NewReport(uuid.NewString())
	runner := execution.NewRunner(s.dispatcher, progress, s.log)
	runErr := runner.Run(ctx, scenarios, report)
	report.Finish()
	if runErr != nil {
		return report, runErr
	}
	return report, nil
}
