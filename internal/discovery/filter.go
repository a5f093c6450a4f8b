package discovery

import (
	"path"
	"strings"

	"utb/internal/domain"
)

// Filter narrows scenarios by name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps scenarios whose name matches the pattern using
// wildcard matching. Supports patterns like "Scenario_UserTest*" or
// "*Payment*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByName(scenarios []*domain.Scenario, pattern string) []*domain.Scenario {
	if pattern == "" {
		return scenarios
	}

	var filtered []*domain.Scenario
	for _, scn := range scenarios {
		if matchName(scn.Name, pattern) {
			filtered = append(filtered, scn)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.ContainsAny(pattern, "*?") {
		// Flexible fallback for patterns like "*Payment*": every
		// non-empty part between wildcards must appear in the name.
		parts := strings.Split(pattern, "*")
		hasPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	return strings.Contains(name, pattern)
}
