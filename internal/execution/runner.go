package execution

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"utb/internal/domain"
	"utb/internal/host"
)

// Progress receives live counters while a run progresses.
type Progress interface {
	Update(passed, failed, skipped int)
	Finish()
}

// Runner executes scenarios one after another — scenario bodies never
// interleave — and feeds results into the report and the dispatcher's
// event hooks.
type Runner struct {
	dispatcher *host.Dispatcher
	progress   Progress
	log        *logrus.Logger
}

// NewRunner creates a Runner. progress may be nil.
func NewRunner(dispatcher *host.Dispatcher, progress Progress, log *logrus.Logger) *Runner {
	return &Runner{dispatcher: dispatcher, progress: progress, log: log}
}

// Run executes all scenarios, stopping early only on cancellation.
func (r *Runner) Run(ctx context.Context, scenarios []*domain.Scenario, report *domain.Report) error {
	for _, scn := range scenarios {
		res, err := r.runScenario(ctx, scn)
		if err != nil {
			return err
		}
		report.Add(res)
		if r.progress != nil {
			r.progress.Update(report.Passed, report.Failed, report.Skipped)
		}
	}
	if r.progress != nil {
		r.progress.Finish()
	}
	return nil
}

func (r *Runner) runScenario(ctx context.Context, scn *domain.Scenario) (*domain.ScenarioResult, error) {
	res := domain.NewScenarioResult(scn)

	if scn.Skipped {
		// Build-time skip short-circuits: the body never executes.
		res.Status = domain.StatusSkip
		res.SkipReason = scn.SkipReason
		r.log.WithFields(logrus.Fields{"scenario": scn.Name, "reason": scn.SkipReason}).Debug("scenario skipped")
		return res, nil
	}

	start := time.Now()
	err := scn.Do(ctx)
	res.Duration = time.Since(start)

	if err == nil {
		res.Status = domain.StatusPass
		r.dispatcher.FireScenarioPassed(host.ScenarioPassedEvent{Result: res})
		return res, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Cancellation belongs to the host, not to this scenario.
		return nil, err
	}

	// A skip signal raised from a running body is a failure like any
	// other raised error; only the build-time marker path above may
	// produce a skipped scenario.
	res.Err = err
	r.dispatcher.FireExceptionRaised(host.ExceptionRaisedEvent{Result: res, Err: err})
	res.Status = domain.StatusFail
	r.dispatcher.FireScenarioFailed(host.ScenarioFailedEvent{Result: res})
	r.log.WithFields(logrus.Fields{"scenario": scn.Name}).Debug("scenario failed")
	return res, nil
}
