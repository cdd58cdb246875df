package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/tradecheck/pkg/check"
	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// Violation is one reported row-level violation: the original trade joined
// to one issue type and its severity.
type Violation struct {
	Trade     tradelog.Trade
	IssueType string
	Level     check.Severity
}

// SkippedIssue records an issue type whose evidence could not be expanded.
type SkippedIssue struct {
	Outcome   string
	IssueType string
	Reason    string
}

// IssueCount is the number of violation records for one issue type.
// Grouping is case-insensitive; IssueType keeps the first-seen casing.
type IssueCount struct {
	IssueType string
	Count     int
}

// Summary aggregates the violation records of one report.
type Summary struct {
	Errors      int
	Warnings    int
	ByIssueType []IssueCount
}

// Report is the full violation report of one validation run.
type Report struct {
	Violations []Violation
	Skipped    []SkippedIssue
	Summary    Summary
}

// Generate expands every failing outcome into violation records joined
// against the table, deduplicates on (idx, issue type), and sorts by idx.
// It fails with a StaleIndexError when evidence references a row the table
// does not contain.
func Generate(outcomes []check.Outcome, tbl *tradelog.Table) (*Report, error) {
	type recordKey struct {
		idx       int64
		issueType string
	}

	rep := &Report{}
	seen := make(map[recordKey]bool)

	for _, out := range outcomes {
		if !out.Failed() {
			continue
		}
		for _, issue := range out.Issues() {
			idxs, reason := extractIdxs(issue.Evidence)
			if reason != "" {
				rep.Skipped = append(rep.Skipped, SkippedIssue{
					Outcome:   out.Name,
					IssueType: issue.Type,
					Reason:    reason,
				})
				continue
			}
			for _, idx := range idxs {
				key := recordKey{idx: idx, issueType: issue.Type}
				if seen[key] {
					continue
				}
				tr, ok := tbl.Lookup(idx)
				if !ok {
					return nil, &StaleIndexError{Outcome: out.Name, IssueType: issue.Type, Idx: idx}
				}
				seen[key] = true
				rep.Violations = append(rep.Violations, Violation{
					Trade:     tr,
					IssueType: issue.Type,
					Level:     out.SeverityFor(issue.Type),
				})
			}
		}
	}

	sort.SliceStable(rep.Violations, func(i, j int) bool {
		return rep.Violations[i].Trade.Idx < rep.Violations[j].Trade.Idx
	})
	rep.Summary = summarize(rep.Violations)
	return rep, nil
}

// extractIdxs reads the idx value of every evidence row. A non-empty
// reason marks the whole issue as malformed; none of its rows are used.
func extractIdxs(ev *check.Evidence) ([]int64, string) {
	header := ev.Header()
	pos := -1
	for i, field := range header {
		if field == string(tradelog.ColIdx) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Sprintf("%v: header lacks idx field", ErrMalformedEvidence)
	}

	idxs := make([]int64, 0, ev.Len())
	for i, row := range ev.Rows() {
		if len(row) != len(header) {
			return nil, fmt.Sprintf("%v: row %d has %d values for %d fields", ErrMalformedEvidence, i, len(row), len(header))
		}
		idx, ok := asInt64(row[pos])
		if !ok {
			return nil, fmt.Sprintf("%v: row %d idx value %v is not an integer", ErrMalformedEvidence, i, row[pos])
		}
		idxs = append(idxs, idx)
	}
	return idxs, ""
}

// asInt64 coerces the evidence cell types an idx may arrive as.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

// summarize counts severities and per-issue-type records. Issue types are
// grouped case-insensitively, reported with first-seen casing, and ordered
// by descending count with first appearance breaking ties.
func summarize(violations []Violation) Summary {
	s := Summary{}
	counts := make(map[string]*IssueCount)
	var order []string

	for _, v := range violations {
		switch v.Level {
		case check.SeverityWarning:
			s.Warnings++
		default:
			s.Errors++
		}
		key := strings.ToLower(v.IssueType)
		c, ok := counts[key]
		if !ok {
			c = &IssueCount{IssueType: v.IssueType}
			counts[key] = c
			order = append(order, key)
		}
		c.Count++
	}

	s.ByIssueType = make([]IssueCount, 0, len(order))
	for _, key := range order {
		s.ByIssueType = append(s.ByIssueType, *counts[key])
	}
	sort.SliceStable(s.ByIssueType, func(i, j int) bool {
		return s.ByIssueType[i].Count > s.ByIssueType[j].Count
	})
	return s
}
