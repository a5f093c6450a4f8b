package domain

import "time"

// Report aggregates the results of one run.
type Report struct {
	RunID    string
	Results  []*ScenarioResult
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration

	started time.Time
}

// NewReport creates an empty report and starts its clock.
func NewReport(runID string) *Report {
	return &Report{RunID: runID, started: time.Now()}
}

// Add appends a scenario result and updates the counters.
func (r *Report) Add(res *ScenarioResult) {
	r.Results = append(r.Results, res)
	r.Total++
	switch res.Status {
	case StatusPass:
		r.Passed++
	case StatusFail:
		r.Failed++
	case StatusSkip:
		r.Skipped++
	}
}

// Finish freezes the report duration.
func (r *Report) Finish() {
	r.Duration = time.Since(r.started)
}

// Failures returns the failed results in run order.
func (r *Report) Failures() []*ScenarioResult {
	var failed []*ScenarioResult
	for _, res := range r.Results {
		if res.Status == StatusFail {
			failed = append(failed, res)
		}
	}
	return failed
}
