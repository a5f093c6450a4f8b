// Package translate converts a populated result collector into the
// host's outcome vocabulary: a raised error, a skip signal, or
// pass-with-annotation.
package translate

import (
	"go.uber.org/multierr"

	"utb/internal/collector"
	"utb/internal/domain"
)

// Translator maps collector buckets onto scenario outcomes. Whether
// multiple simultaneous failures surface as one aggregate error is a
// start-up decision passed in here, never probed at translation time.
type Translator struct {
	aggregate bool
}

// New creates a translator. With aggregate disabled, only the
// first-recorded error of a multi-failure run is surfaced — a
// deterministic precision loss, not a silent drop.
func New(aggregate bool) *Translator {
	return &Translator{aggregate: aggregate}
}

// Translate inspects the collector in fixed precedence order: genuine
// failures first, then expected-failure bookkeeping, then unexpected
// successes. A returned error fails the scenario; annotations are set
// on the scenario for the plugin's report hooks.
func (t *Translator) Translate(scn *domain.Scenario, col *collector.Collector) error {
	if len(col.Exceptions) > 0 {
		if t.aggregate && len(col.Exceptions) > 1 {
			errs := make([]error, 0, len(col.Exceptions))
			for _, e := range col.Exceptions {
				errs = append(errs, e.Err)
			}
			return multierr.Combine(errs...)
		}
		return col.Exceptions[0].Err
	}

	if len(col.ExpectedFailures) > 0 {
		scn.ExpectedFailure = col.ExpectedFailures[0].Err
	}

	if len(col.UnexpectedSuccesses) > 0 {
		scn.UnexpectedSuccess = col.UnexpectedSuccesses[0].Err
		return col.UnexpectedSuccesses[0].Err
	}
	return nil
}
