package report

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleIndex is returned when evidence references an idx that is
	// absent from the table at report time.
	ErrStaleIndex = errors.New("evidence references idx missing from table")

	// ErrMalformedEvidence marks evidence that cannot be expanded: a header
	// without an idx field, an arity mismatch, or a non-integer idx value.
	ErrMalformedEvidence = errors.New("malformed evidence")
)

// StaleIndexError names the offending idx and issue type when report
// generation aborts.
type StaleIndexError struct {
	Outcome   string
	IssueType string
	Idx       int64
}

func (e *StaleIndexError) Error() string {
	return fmt.Sprintf("stale evidence: outcome %q issue %q references idx %d not present in table", e.Outcome, e.IssueType, e.Idx)
}

func (e *StaleIndexError) Unwrap() error {
	return ErrStaleIndex
}
