package validator

import "slices"

// Result is the outcome of one validation call. It is valid exactly when it
// holds no failures.
type Result struct {
	failures Failures
}

func newResult(failures Failures) Result {
	if len(failures) == 0 {
		return Result{}
	}
	return Result{failures: failures}
}

func (r Result) IsValid() bool {
	return len(r.failures) == 0
}

// Failures returns a copy of the failures in field registration order.
// The State values inside are shared, not copied.
func (r Result) Failures() Failures {
	return slices.Clone(r.failures)
}

// Err returns the failures as an error, or nil when the result is valid.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r.Failures()
}
