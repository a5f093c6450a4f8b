package trace

import (
	"strings"

	"go.uber.org/multierr"
)

// Filter removes stack frames that originate from the given module
// prefixes, so user-visible tracebacks start at the test's own code.
type Filter struct {
	prefixes []string
}

// NewFilter creates a Filter dropping frames whose function path starts
// with any of the given prefixes.
func NewFilter(prefixes ...string) *Filter {
	return &Filter{prefixes: prefixes}
}

// FilterError returns err with noise frames removed. Aggregated errors
// are filtered leaf by leaf; errors without a stack pass through
// untouched.
func (f *Filter) FilterError(err error) error {
	if err == nil {
		return nil
	}
	leaves := multierr.Errors(err)
	if len(leaves) > 1 {
		filtered := make([]error, 0, len(leaves))
		for _, leaf := range leaves {
			filtered = append(filtered, f.filterOne(leaf))
		}
		return multierr.Combine(filtered...)
	}
	return f.filterOne(err)
}

func (f *Filter) filterOne(err error) error {
	frames := StackOf(err)
	if frames == nil {
		return err
	}
	kept := make([]Frame, 0, len(frames))
	for _, fr := range frames {
		if f.noise(fr) {
			continue
		}
		kept = append(kept, fr)
	}
	return &FilteredError{cause: err, frames: kept}
}

func (f *Filter) noise(fr Frame) bool {
	for _, p := range f.prefixes {
		if strings.HasPrefix(fr.Function, p) {
			return true
		}
	}
	// runtime plumbing is never interesting to the test author
	return strings.HasPrefix(fr.Function, "runtime.")
}

// FilteredError wraps an error with its noise-free frame list.
type FilteredError struct {
	cause  error
	frames []Frame
}

// Error returns the original error message.
func (e *FilteredError) Error() string { return e.cause.Error() }

// Unwrap exposes the original error for errors.Is / errors.As.
func (e *FilteredError) Unwrap() error { return e.cause }

// Frames returns the filtered traceback.
func (e *FilteredError) Frames() []Frame { return e.frames }
