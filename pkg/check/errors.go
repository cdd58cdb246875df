package check

import "errors"

var (
	// ErrEvidenceArity is returned when an evidence row's length does not
	// match its header.
	ErrEvidenceArity = errors.New("evidence row arity does not match header")

	// ErrNoIssues is returned when a failure outcome is built without issues.
	ErrNoIssues = errors.New("failure outcome requires at least one issue")

	// ErrEmptyEvidence is returned when a failure issue carries no rows.
	ErrEmptyEvidence = errors.New("failure issue requires non-empty evidence")

	// ErrDuplicateIssueType is returned when two issues of one outcome share
	// a type.
	ErrDuplicateIssueType = errors.New("duplicate issue type in outcome")

	// ErrInvalidConfig is returned when the engine configuration fails
	// validation.
	ErrInvalidConfig = errors.New("invalid check configuration")
)
