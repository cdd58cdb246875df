package check

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// PnlCheck validates reported PnL in a single pass over the table, emitting
// two independent evidence streams:
//
//   - "Pnl" (ERROR): the expected PnL, Quantity*(ExitPrice-EntryPrice)*
//     PositionStatus, exceeds the reported PnL by more than the configured
//     tolerance.
//   - "Pnl (Warning)" (WARNING): the exit reason contradicts the sign of
//     the reported PnL — an ExitType containing "Target" with a negative
//     PnL, or one containing "Stoploss" with a positive PnL.
//
// Both streams share the one computation pass, so they live in one outcome
// rather than two separate checks.
type PnlCheck struct {
	Config Config
}

// pnlInputColumns feed the expected-PnL computation. A null in any of them
// makes the comparison meaningless.
var pnlInputColumns = []tradelog.Column{
	tradelog.ColQuantity,
	tradelog.ColEntryPrice,
	tradelog.ColExitPrice,
	tradelog.ColPositionStatus,
	tradelog.ColPnl,
}

func (PnlCheck) Name() string { return "Pnl Validation" }

func (c PnlCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	header := append(tradelog.Header(), "ExitTag", "ExpectedPnl")
	mismatch := NewEvidence(header...)
	contradiction := NewEvidence(header...)
	tolerance := decimal.NewFromFloat(c.Config.PnlTolerance)

	for _, tr := range tbl.Trades() {
		if hasNull(tr, pnlInputColumns) {
			// left to the nulls check
			continue
		}
		expected := decimal.NewFromFloat(tr.Quantity).
			Mul(decimal.NewFromFloat(tr.ExitPrice).Sub(decimal.NewFromFloat(tr.EntryPrice))).
			Mul(decimal.NewFromFloat(tr.PositionStatus))
		tag := exitTag(tr.ExitType)
		row := append(tr.EvidenceRow(), tag, expected.InexactFloat64())

		if expected.Sub(decimal.NewFromFloat(tr.Pnl)).GreaterThan(tolerance) {
			if err := mismatch.Append(row...); err != nil {
				return Outcome{}, err
			}
		}
		if (tag == "+" && tr.Pnl < 0) || (tag == "-" && tr.Pnl > 0) {
			if err := contradiction.Append(row...); err != nil {
				return Outcome{}, err
			}
		}
	}

	var issues []Issue
	if mismatch.Len() > 0 {
		issues = append(issues, Issue{Type: IssuePnl, Severity: SeverityError, Evidence: mismatch})
	}
	if contradiction.Len() > 0 {
		issues = append(issues, Issue{Type: IssuePnlWarning, Severity: SeverityWarning, Evidence: contradiction})
	}
	if len(issues) == 0 {
		return Pass(c.Name(), SegmentUniversal, "pnl validation passed"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "pnl mismatches detected", issues...)
}

// hasNull reports whether any of the given columns is null for the row.
func hasNull(tr tradelog.Trade, cols []tradelog.Column) bool {
	for _, c := range cols {
		if tr.IsNull(c) {
			return true
		}
	}
	return false
}

// exitTag derives the expected PnL sign from the exit reason text: "+" for
// target exits, "-" for stoploss exits, "" when the reason implies nothing.
func exitTag(exitType string) string {
	switch {
	case strings.Contains(exitType, "Target"):
		return "+"
	case strings.Contains(exitType, "Stoploss"):
		return "-"
	default:
		return ""
	}
}
