package check

import (
	"time"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// ExitAfterEntryCheck flags rows whose exit instant is strictly earlier
// than the entry instant. The epoch sentinel 0 compares like any other
// instant, so a row with an unparseable exit and a valid entry is flagged
// here as well as by the nulls check.
type ExitAfterEntryCheck struct{}

func (ExitAfterEntryCheck) Name() string { return "Exit After Entry" }

func (c ExitAfterEntryCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(tradelog.Header()...)
	for _, tr := range tbl.Trades() {
		if tr.ExitEpoch < tr.KeyEpoch {
			if err := ev.Append(tr.EvidenceRow()...); err != nil {
				return Outcome{}, err
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "all trades have valid entry/exit ordering"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "exit before entry detected",
		Issue{Type: IssueExitBeforeEntry, Severity: SeverityError, Evidence: ev})
}

// MarketHoursCheck flags rows whose entry or exit clock time falls outside
// the configured market window. Rows with a sentinel epoch are skipped;
// unparseable timestamps are the nulls check's finding, not a market-hours
// violation.
type MarketHoursCheck struct {
	Config Config
}

func (MarketHoursCheck) Name() string { return "Market Hours" }

func (c MarketHoursCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	open, close, err := c.Config.marketWindow()
	if err != nil {
		return Outcome{}, err
	}

	ev := NewEvidence(tradelog.Header()...)
	for _, tr := range tbl.Trades() {
		if outsideWindow(tr.KeyEpoch, open, close) || outsideWindow(tr.ExitEpoch, open, close) {
			if err := ev.Append(tr.EvidenceRow()...); err != nil {
				return Outcome{}, err
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "all trades within market hours"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "market hour violations detected",
		Issue{Type: IssueMarketHours, Severity: SeverityError, Evidence: ev})
}

// outsideWindow reports whether the instant's clock time falls outside
// [open, close] seconds of day. The sentinel 0 is never outside.
func outsideWindow(epochMicros int64, open, close int) bool {
	if epochMicros == 0 {
		return false
	}
	t := time.UnixMicro(epochMicros).UTC()
	sod := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return sod < open || sod > close
}
