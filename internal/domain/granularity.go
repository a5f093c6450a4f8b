package domain

// Granularity is the wrapping strategy chosen for a discovered unit:
// one scenario per test method, per test case, or per module. The
// presence of class- or module-level lifecycle hooks forces the coarser
// granularities.
type Granularity int

const (
	// PerMethod wraps one scenario around each test method.
	PerMethod Granularity = iota
	// PerClass wraps one scenario around a whole test case.
	PerClass
	// PerModule wraps one scenario around a whole module.
	PerModule
)

// String returns the granularity name.
func (g Granularity) String() string {
	switch g {
	case PerMethod:
		return "per-method"
	case PerClass:
		return "per-class"
	case PerModule:
		return "per-module"
	}
	return "unknown"
}
