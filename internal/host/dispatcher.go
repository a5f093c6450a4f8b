package host

import "utb/internal/domain"

// ConfigLoadedEvent fires once, before any discovery, carrying the
// registries the plugin needs to install its loader.
type ConfigLoadedEvent struct {
	Loaders *LoaderRegistry
	Modules ModuleLoader
}

// ScenarioPassedEvent fires after a scenario body returns normally.
type ScenarioPassedEvent struct {
	Result *domain.ScenarioResult
}

// ScenarioFailedEvent fires after a scenario body fails.
type ScenarioFailedEvent struct {
	Result *domain.ScenarioResult
}

// ExceptionRaisedEvent fires before ScenarioFailedEvent with the raw
// error; handlers may replace Result.Err, e.g. to filter traceback
// noise.
type ExceptionRaisedEvent struct {
	Result *domain.ScenarioResult
	Err    error
}

// Dispatcher routes host lifecycle events to their listeners in
// subscription order. Scenario execution is cooperative, so no locking
// is needed.
type Dispatcher struct {
	configLoaded    []func(ConfigLoadedEvent)
	scenarioPassed  []func(ScenarioPassedEvent)
	scenarioFailed  []func(ScenarioFailedEvent)
	exceptionRaised []func(ExceptionRaisedEvent)
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnConfigLoaded subscribes to ConfigLoadedEvent.
func (d *Dispatcher) OnConfigLoaded(h func(ConfigLoadedEvent)) *Dispatcher {
	d.configLoaded = append(d.configLoaded, h)
	return d
}

// OnScenarioPassed subscribes to ScenarioPassedEvent.
func (d *Dispatcher) OnScenarioPassed(h func(ScenarioPassedEvent)) *Dispatcher {
	d.scenarioPassed = append(d.scenarioPassed, h)
	return d
}

// OnScenarioFailed subscribes to ScenarioFailedEvent.
func (d *Dispatcher) OnScenarioFailed(h func(ScenarioFailedEvent)) *Dispatcher {
	d.scenarioFailed = append(d.scenarioFailed, h)
	return d
}

// OnExceptionRaised subscribes to ExceptionRaisedEvent.
func (d *Dispatcher) OnExceptionRaised(h func(ExceptionRaisedEvent)) *Dispatcher {
	d.exceptionRaised = append(d.exceptionRaised, h)
	return d
}

// FireConfigLoaded delivers a ConfigLoadedEvent.
func (d *Dispatcher) FireConfigLoaded(e ConfigLoadedEvent) {
	for _, h := range d.configLoaded {
		h(e)
	}
}

// FireScenarioPassed delivers a ScenarioPassedEvent.
func (d *Dispatcher) FireScenarioPassed(e ScenarioPassedEvent) {
	for _, h := range d.scenarioPassed {
		h(e)
	}
}

// FireScenarioFailed delivers a ScenarioFailedEvent.
func (d *Dispatcher) FireScenarioFailed(e ScenarioFailedEvent) {
	for _, h := range d.scenarioFailed {
		h(e)
	}
}

// FireExceptionRaised delivers an ExceptionRaisedEvent.
func (d *Dispatcher) FireExceptionRaised(e ExceptionRaisedEvent) {
	for _, h := range d.exceptionRaised {
		h(e)
	}
}
