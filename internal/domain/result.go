package domain

import "time"

// Status is the host vocabulary for a finished scenario.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// ScenarioResult represents the outcome of executing one scenario.
type ScenarioResult struct {
	Scenario   *Scenario
	Status     Status
	Err        error // non-nil only for failed scenarios
	SkipReason string
	Duration   time.Duration

	details []string
}

// NewScenarioResult creates an empty result for a scenario.
func NewScenarioResult(s *Scenario) *ScenarioResult {
	return &ScenarioResult{Scenario: s}
}

// AddExtraDetails appends a human-readable note to the result's report
// detail list.
func (r *ScenarioResult) AddExtraDetails(detail string) {
	r.details = append(r.details, detail)
}

// ExtraDetails returns the accumulated report notes in insertion order.
func (r *ScenarioResult) ExtraDetails() []string {
	return r.details
}
