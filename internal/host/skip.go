package host

import "utb/internal/domain"

// Skip returns a decorator marking a scenario as skipped with the given
// reason. The reason may be empty. A skipped scenario's body is never
// executed.
func Skip(reason string) func(*domain.Scenario) *domain.Scenario {
	return func(s *domain.Scenario) *domain.Scenario {
		s.Skipped = true
		s.SkipReason = reason
		return s
	}
}
