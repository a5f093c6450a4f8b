package host

import (
	"context"
	"testing"

	"utb/internal/domain"
	"utb/xunit"
)

func TestModuleRegistry_RegistrationOrderPreserved(t *testing.T) {
	r := NewModuleRegistry()
	paths := []string{"/tests/c.go", "/tests/a.go", "/tests/b.go"}
	for _, p := range paths {
		if err := r.Register(xunit.NewModule("tests", p)); err != nil {
			t.Fatal(err)
		}
	}

	got := r.Paths()
	if len(got) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(got))
	}
	for i := range paths {
		if got[i] != paths[i] {
			t.Fatalf("expected registration order %v, got %v", paths, got)
		}
	}
	if r.Len() != 3 {
		t.Errorf("expected Len 3, got %d", r.Len())
	}
}

func TestModuleRegistry_DuplicateRejected(t *testing.T) {
	r := NewModuleRegistry()
	if err := r.Register(xunit.NewModule("tests.a", "/tests/a.go")); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(xunit.NewModule("tests.other", "/tests/a.go")); err == nil {
		t.Error("registering the same path twice must fail")
	}
}

func TestModuleRegistry_MissingFileRejected(t *testing.T) {
	r := NewModuleRegistry()
	if err := r.Register(xunit.NewModule("tests.nofile", "")); err == nil {
		t.Error("a module without a file path must be rejected")
	}
}

func TestModuleRegistry_Load(t *testing.T) {
	r := NewModuleRegistry()
	m := xunit.NewModule("tests.a", "/tests/a.go")
	if err := r.Register(m); err != nil {
		t.Fatal(err)
	}

	got, err := r.Load(context.Background(), "/tests/a.go")
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Error("Load must return the registered module by reference")
	}

	if _, err := r.Load(context.Background(), "/tests/unknown.go"); err == nil {
		t.Error("an unknown path must be a resolution error")
	}
}

func TestLoaderRegistry(t *testing.T) {
	r := NewLoaderRegistry()
	if r.Loader() != nil {
		t.Error("an empty registry must return nil")
	}

	built := 0
	r.Register(func() ScenarioLoader {
		built++
		return nil
	})
	r.Loader()
	r.Loader()
	if built != 2 {
		t.Errorf("every Loader call must invoke the factory, got %d", built)
	}
}

func TestSkip(t *testing.T) {
	scn := &domain.Scenario{Name: "Scenario_X"}
	got := Skip("not ready")(scn)
	if got != scn {
		t.Fatal("Skip must decorate in place")
	}
	if !scn.Skipped || scn.SkipReason != "not ready" {
		t.Errorf("unexpected skip state: %v %q", scn.Skipped, scn.SkipReason)
	}
}

func TestDispatcher_DeliversInSubscriptionOrder(t *testing.T) {
	var order []string
	d := NewDispatcher().
		OnScenarioPassed(func(ScenarioPassedEvent) { order = append(order, "first") }).
		OnScenarioPassed(func(ScenarioPassedEvent) { order = append(order, "second") })

	d.FireScenarioPassed(ScenarioPassedEvent{})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected subscription order delivery, got %v", order)
	}
}
