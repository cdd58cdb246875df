package check

import "fmt"

// Status is the result classification of a single check evaluation.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusInfo Status = "INFO"
)

// Severity classifies how serious a violation of one issue type is.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Issue type names shared between checks and reporting.
const (
	IssueNulls           = "Nulls"
	IssueZeros           = "Zeros"
	IssueFractional      = "Fractional Value"
	IssueNegatives       = "Negatives"
	IssueExitBeforeEntry = "Exit < Entry"
	IssueMarketHours     = "Outside Market Hours"
	IssuePnl             = "Pnl"
	IssuePnlWarning      = "Pnl (Warning)"
	IssueReferencePrice  = "LTP"
	IssueDuplicates      = "Duplicates"
	IssueExitAfterExpiry = "Exit After Expiry"
	IssueLotQuantity     = "Lot Quantity"
	IssueUnknownSymbol   = "Unknown Symbol"
	IssueRuleError       = "Rule Error"
)

// Segment names group checks into rule families.
const (
	SegmentUniversal = "UNIVERSAL"
	SegmentGeneral   = "GENERAL"
	SegmentOptions   = "OPTIONS"
)

// Evidence is a tagged block of per-row findings: a header of ordered field
// names plus zero or more rows whose values align positionally with the
// header. Arity is a construction-time invariant enforced by Append.
type Evidence struct {
	header []string
	rows   [][]any
}

// NewEvidence creates an empty evidence block with the given header.
func NewEvidence(header ...string) *Evidence {
	h := make([]string, len(header))
	copy(h, header)
	return &Evidence{header: h}
}

// Append adds one data row, rejecting rows whose arity does not match the
// header.
func (e *Evidence) Append(values ...any) error {
	if len(values) != len(e.header) {
		return fmt.Errorf("%w: got %d values for %d fields", ErrEvidenceArity, len(values), len(e.header))
	}
	e.rows = append(e.rows, values)
	return nil
}

// Header returns a copy of the ordered field names.
func (e *Evidence) Header() []string {
	out := make([]string, len(e.header))
	copy(out, e.header)
	return out
}

// Rows returns the data rows. The returned slice is shared; callers must
// treat it as read-only.
func (e *Evidence) Rows() [][]any {
	return e.rows
}

// Len returns the number of data rows.
func (e *Evidence) Len() int {
	return len(e.rows)
}

// Issue is one evidence stream of a failing outcome: a named violation
// category with its severity and per-row evidence.
type Issue struct {
	Type     string
	Severity Severity
	Evidence *Evidence
}

// Metric is a single named summary value reported by an informational
// check.
type Metric struct {
	Name  string
	Value string
}

// Outcome is the standardized, immutable result of evaluating one check
// against the table.
type Outcome struct {
	Name    string
	Segment string
	Status  Status
	Message string

	issues  []Issue
	metrics []Metric
}

// Pass builds a passing outcome with no evidence.
func Pass(name, segment, message string) Outcome {
	return Outcome{Name: name, Segment: segment, Status: StatusPass, Message: message}
}

// Info builds an informational outcome carrying summary metrics. INFO never
// represents a violation and carries no row evidence.
func Info(name, segment, message string, metrics ...Metric) Outcome {
	return Outcome{Name: name, Segment: segment, Status: StatusInfo, Message: message, metrics: metrics}
}

// Failure builds a failing outcome from one or more issues. Every issue
// must carry a non-empty evidence block and issue types must be unique
// within the outcome.
func Failure(name, segment, message string, issues ...Issue) (Outcome, error) {
	if len(issues) == 0 {
		return Outcome{}, ErrNoIssues
	}
	seen := make(map[string]bool, len(issues))
	for _, is := range issues {
		if is.Evidence == nil || is.Evidence.Len() == 0 {
			return Outcome{}, fmt.Errorf("%w: issue %q", ErrEmptyEvidence, is.Type)
		}
		if seen[is.Type] {
			return Outcome{}, fmt.Errorf("%w: %q", ErrDuplicateIssueType, is.Type)
		}
		seen[is.Type] = true
	}
	return Outcome{Name: name, Segment: segment, Status: StatusFail, Message: message, issues: issues}, nil
}

// RuleError builds the synthetic failure emitted when a check itself fails
// to execute. It carries the error description and an idx-only evidence
// header with zero rows, so reporting yields no violation records for it.
func RuleError(name, segment string, err error) Outcome {
	return Outcome{
		Name:    name,
		Segment: segment,
		Status:  StatusFail,
		Message: fmt.Sprintf("check failed to execute: %v", err),
		issues: []Issue{{
			Type:     IssueRuleError,
			Severity: SeverityError,
			Evidence: NewEvidence("idx"),
		}},
	}
}

// Issues returns the outcome's evidence streams in emission order. Empty
// for PASS and INFO outcomes.
func (o Outcome) Issues() []Issue {
	return o.issues
}

// Metrics returns the summary values of an informational outcome.
func (o Outcome) Metrics() []Metric {
	return o.metrics
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusFail
}

// SeverityFor returns the severity recorded for the given issue type. The
// lookup is total: issue types the outcome did not classify default to
// ERROR.
func (o Outcome) SeverityFor(issueType string) Severity {
	for _, is := range o.issues {
		if is.Type == issueType {
			if is.Severity == "" {
				return SeverityError
			}
			return is.Severity
		}
	}
	return SeverityError
}
