package check

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// nonZeroColumns must never hold an exact zero.
var nonZeroColumns = []tradelog.Column{
	tradelog.ColPositionStatus,
	tradelog.ColQuantity,
	tradelog.ColEntryPrice,
	tradelog.ColExitPrice,
	tradelog.ColPnl,
}

// wholeNumberColumns must not carry a fractional part.
var wholeNumberColumns = []tradelog.Column{
	tradelog.ColQuantity,
	tradelog.ColPositionStatus,
}

// nonNegativeColumns must not be negative.
var nonNegativeColumns = []tradelog.Column{
	tradelog.ColQuantity,
	tradelog.ColEntryPrice,
	tradelog.ColExitPrice,
}

// NullsCheck flags rows with a missing value in any column except the
// loader-derived epoch columns.
type NullsCheck struct{}

func (NullsCheck) Name() string { return "No Nulls" }

func (c NullsCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(tradelog.Header()...)
	for _, tr := range tbl.Trades() {
		for _, col := range tradelog.Columns() {
			if tradelog.IsDerived(col) || col == tradelog.ColIdx {
				continue
			}
			if tr.IsNull(col) {
				if err := ev.Append(tr.EvidenceRow()...); err != nil {
					return Outcome{}, err
				}
				break
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "no nulls found"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "nulls detected",
		Issue{Type: IssueNulls, Severity: SeverityError, Evidence: ev})
}

// NonZeroCheck flags rows where PositionStatus, Quantity, EntryPrice,
// ExitPrice, or Pnl equals exactly zero. Null cells are left to the nulls
// check.
type NonZeroCheck struct{}

func (NonZeroCheck) Name() string { return "Non-Zero Values" }

func (c NonZeroCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(tradelog.Header()...)
	for _, tr := range tbl.Trades() {
		for _, col := range nonZeroColumns {
			if tr.IsNull(col) {
				continue
			}
			if v, ok := tr.Value(col).(float64); ok && v == 0 {
				if err := ev.Append(tr.EvidenceRow()...); err != nil {
					return Outcome{}, err
				}
				break
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "no zeros detected"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "zero values detected",
		Issue{Type: IssueZeros, Severity: SeverityError, Evidence: ev})
}

// FractionalCheck flags rows where Quantity or PositionStatus carries a
// non-zero fractional part.
type FractionalCheck struct{}

func (FractionalCheck) Name() string { return "No Fractional Values" }

func (c FractionalCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(tradelog.Header()...)
	for _, tr := range tbl.Trades() {
		for _, col := range wholeNumberColumns {
			if tr.IsNull(col) {
				continue
			}
			if v, ok := tr.Value(col).(float64); ok && v != math.Trunc(v) {
				if err := ev.Append(tr.EvidenceRow()...); err != nil {
					return Outcome{}, err
				}
				break
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "no fractional values detected"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "fractional values detected",
		Issue{Type: IssueFractional, Severity: SeverityError, Evidence: ev})
}

// NegativesCheck flags rows where Quantity, EntryPrice, or ExitPrice is
// negative.
type NegativesCheck struct{}

func (NegativesCheck) Name() string { return "No Negative Values" }

func (c NegativesCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(tradelog.Header()...)
	for _, tr := range tbl.Trades() {
		for _, col := range nonNegativeColumns {
			if tr.IsNull(col) {
				continue
			}
			if v, ok := tr.Value(col).(float64); ok && v < 0 {
				if err := ev.Append(tr.EvidenceRow()...); err != nil {
					return Outcome{}, err
				}
				break
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "no negative values detected"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "negative values detected",
		Issue{Type: IssueNegatives, Severity: SeverityError, Evidence: ev})
}

// DuplicateRowsCheck flags rows that are identical on every column except
// idx. All members of a duplicate group are reported, in table order.
type DuplicateRowsCheck struct{}

func (DuplicateRowsCheck) Name() string { return "Duplicate Rows" }

func (c DuplicateRowsCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	groups := make(map[string][]int, tbl.Len())
	trades := tbl.Trades()
	for i, tr := range trades {
		groups[duplicateKey(tr)] = append(groups[duplicateKey(tr)], i)
	}

	dup := make(map[int]bool)
	for _, members := range groups {
		if len(members) > 1 {
			for _, i := range members {
				dup[i] = true
			}
		}
	}

	ev := NewEvidence(tradelog.Header()...)
	for i, tr := range trades {
		if dup[i] {
			if err := ev.Append(tr.EvidenceRow()...); err != nil {
				return Outcome{}, err
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentGeneral, "no duplicate rows detected"), nil
	}
	return Failure(c.Name(), SegmentGeneral, "duplicate rows detected",
		Issue{Type: IssueDuplicates, Severity: SeverityError, Evidence: ev})
}

// duplicateKey serializes every column except idx, keeping null cells
// distinguishable from zero values.
func duplicateKey(tr tradelog.Trade) string {
	var b strings.Builder
	for _, col := range tradelog.Columns() {
		if col == tradelog.ColIdx {
			continue
		}
		if tr.IsNull(col) {
			b.WriteString("\x00null")
		} else {
			fmt.Fprintf(&b, "\x00%v", tr.Value(col))
		}
	}
	return b.String()
}
