// Package host defines the collaborator surface the bridge is written
// against: module loading, the scenario loader registry, lifecycle
// events and the skip primitive.
package host

import (
	"context"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"utb/internal/domain"
	"utb/xunit"
)

// ModuleLoader resolves a path to a loaded legacy test module. A
// resolution failure is discovery-fatal and is propagated to the caller
// unwrapped.
type ModuleLoader interface {
	Load(ctx context.Context, path string) (*xunit.Module, error)
}

// ScenarioLoader turns a module path into host-executable scenarios.
type ScenarioLoader interface {
	Load(ctx context.Context, path string) ([]*domain.Scenario, error)
}

// ModuleRegistry is the reference ModuleLoader: an explicit,
// insertion-ordered path-to-module table. Modules are handed around by
// reference; nothing is registered into a process-global name table.
type ModuleRegistry struct {
	modules *orderedmap.OrderedMap[string, *xunit.Module]
}

// NewModuleRegistry creates an empty registry.
func NewModuleRegistry() *ModuleRegistry {
	return &ModuleRegistry{modules: orderedmap.New[string, *xunit.Module]()}
}

// Register adds a module keyed by its file path. Registering the same
// path twice is a caller bug.
func (r *ModuleRegistry) Register(m *xunit.Module) error {
	if m.File == "" {
		return fmt.Errorf("module %q has no file path", m.Name)
	}
	if _, exists := r.modules.Get(m.File); exists {
		return fmt.Errorf("module already registered for %s", m.File)
	}
	r.modules.Set(m.File, m)
	return nil
}

// Load resolves a registered module by path.
func (r *ModuleRegistry) Load(_ context.Context, path string) (*xunit.Module, error) {
	m, ok := r.modules.Get(path)
	if !ok {
		return nil, fmt.Errorf("no test module registered for %s", path)
	}
	return m, nil
}

// Paths returns the registered paths in registration order.
func (r *ModuleRegistry) Paths() []string {
	var paths []string
	for pair := r.modules.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	return paths
}

// Len returns the number of registered modules.
func (r *ModuleRegistry) Len() int {
	return r.modules.Len()
}

var _ ModuleLoader = (*ModuleRegistry)(nil)

// LoaderRegistry holds the scenario loader factory registered by the
// plugin at config time. Idempotency of registration is the caller's
// responsibility.
type LoaderRegistry struct {
	factory func() ScenarioLoader
}

// NewLoaderRegistry creates an empty loader registry.
func NewLoaderRegistry() *LoaderRegistry {
	return &LoaderRegistry{}
}

// Register installs the loader factory.
func (r *LoaderRegistry) Register(factory func() ScenarioLoader) {
	r.factory = factory
}

// Loader builds a loader from the registered factory, or nil when no
// factory was registered.
func (r *LoaderRegistry) Loader() ScenarioLoader {
	if r.factory == nil {
		return nil
	}
	return r.factory()
}
