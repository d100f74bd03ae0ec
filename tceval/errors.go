package tceval

import "fmt"

// ShapeError reports inputs whose dimensions disagree with the benchmark:
// mismatched prediction line counts or label counts. It aborts the run
// before any metric is computed, since partial metrics would mislead.
type ShapeError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("tceval: %s: expected %d, got %d", e.What, e.Want, e.Got)
}

// AlignmentError wraps an alignment failure with the index of the
// offending sample. It indicates a malformed prediction file.
type AlignmentError struct {
	Sample int
	Err    error
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("tceval: sample %d: %v", e.Sample, e.Err)
}

func (e *AlignmentError) Unwrap() error { return e.Err }
