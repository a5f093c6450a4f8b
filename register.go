// Package utb bridges xUnit-style legacy test modules into
// scenario-shaped runs. Test binaries register their modules here and
// hand control to Execute.
package utb

import (
	"utb/internal/host"
	"utb/xunit"
)

// defaultRegistry collects modules registered by the embedding binary
// before Execute runs.
var defaultRegistry = host.NewModuleRegistry()

// Register adds a legacy test module to the default registry.
func Register(m *xunit.Module) error {
	return defaultRegistry.Register(m)
}

// MustRegister is Register that panics on error, for use in package
// init functions.
func MustRegister(m *xunit.Module) {
	if err := Register(m); err != nil {
		panic(err)
	}
}

// Registry exposes the default registry for callers that wire their
// own session.
func Registry() *host.ModuleRegistry {
	return defaultRegistry
}
