package check

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// ReferencePriceCheck compares recorded entry and exit prices against an
// externally supplied reference price book. The book is keyed by
// (epoch-second bucket, symbol); the lookup bucket is the trade instant
// minus the configured lookback. A row is flagged when either reference
// price is missing or differs from the recorded price beyond the tolerance,
// or when a sentinel epoch makes the lookup impossible. The evidence
// carries a Reason column naming every failed comparison of the row.
type ReferencePriceCheck struct {
	Book   *tradelog.PriceBook
	Config Config
}

func (ReferencePriceCheck) Name() string { return "Reference Price Match" }

func (c ReferencePriceCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(append(tradelog.Header(), "Reason")...)
	lookback := int64(c.Config.ReferenceLookback.Seconds())
	tolerance := decimal.NewFromFloat(c.Config.PriceTolerance)

	for _, tr := range tbl.Trades() {
		var reasons []string
		if tr.KeyEpoch == 0 || tr.ExitEpoch == 0 {
			reasons = append(reasons, "unparseable instant")
		} else {
			if r := c.compare(tr.KeyEpoch, lookback, tr.Symbol, tr.EntryPrice, tolerance, "entry"); r != "" {
				reasons = append(reasons, r)
			}
			if r := c.compare(tr.ExitEpoch, lookback, tr.Symbol, tr.ExitPrice, tolerance, "exit"); r != "" {
				reasons = append(reasons, r)
			}
		}
		if len(reasons) == 0 {
			continue
		}
		if err := ev.Append(append(tr.EvidenceRow(), strings.Join(reasons, "; "))...); err != nil {
			return Outcome{}, err
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentUniversal, "entry/exit prices consistent with reference"), nil
	}
	return Failure(c.Name(), SegmentUniversal, "reference price mismatches detected",
		Issue{Type: IssueReferencePrice, Severity: SeverityError, Evidence: ev})
}

// compare returns an empty string when the reference price near the instant
// agrees with the recorded price within tolerance, and the failure reason
// otherwise.
func (c ReferencePriceCheck) compare(epochMicros, lookback int64, symbol string, price float64, tolerance decimal.Decimal, leg string) string {
	bucket := epochMicros/1e6 - lookback
	ref, ok := c.Book.Price(bucket, symbol)
	if !ok {
		return leg + " reference missing"
	}
	diff := decimal.NewFromFloat(ref).Sub(decimal.NewFromFloat(price)).Abs()
	if diff.GreaterThan(tolerance) {
		return leg + " price mismatch"
	}
	return ""
}
