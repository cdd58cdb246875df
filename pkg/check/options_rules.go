package check

import (
	"regexp"
	"time"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// Option symbols embed a DDMonYY expiry token between the root symbol and
// the strike, e.g. NIFTY30JAN24C21000.
var (
	expiryTokenRe = regexp.MustCompile(`\d{1,2}[A-Z]{3}\d{2}`)
	symbolRootRe  = regexp.MustCompile(`^(.+?)\d{1,2}[A-Z]{3}\d{2}`)
)

// symbolExpiry extracts and parses the expiry token embedded in an option
// symbol. ok is false when the symbol carries no parseable token.
func symbolExpiry(symbol string) (time.Time, bool) {
	token := expiryTokenRe.FindString(symbol)
	if token == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse("2Jan06", token)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// symbolRoot returns the instrument root preceding the expiry token.
func symbolRoot(symbol string) (string, bool) {
	m := symbolRootRe.FindStringSubmatch(symbol)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExpiryCheck flags option trades exited after their contract expired. The
// expiry is parsed from the symbol; positions may be closed any time on the
// expiry day itself, so only exits past the end of that day are flagged.
// Rows without a parseable expiry token or with a sentinel exit epoch are
// skipped.
type ExpiryCheck struct{}

func (ExpiryCheck) Name() string { return "Option Expiry" }

func (c ExpiryCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	ev := NewEvidence(append(tradelog.Header(), "Expiry")...)
	for _, tr := range tbl.Trades() {
		if tr.IsNull(tradelog.ColSymbol) {
			continue
		}
		expiry, ok := symbolExpiry(tr.Symbol)
		if !ok {
			continue
		}
		cutoff := expiry.AddDate(0, 0, 1)
		if tr.ExitEpoch > cutoff.UnixMicro() {
			if err := ev.Append(append(tr.EvidenceRow(), expiry.Format("2006-01-02"))...); err != nil {
				return Outcome{}, err
			}
		}
	}
	if ev.Len() == 0 {
		return Pass(c.Name(), SegmentOptions, "no exits after expiry"), nil
	}
	return Failure(c.Name(), SegmentOptions, "exits after expiry detected",
		Issue{Type: IssueExitAfterExpiry, Severity: SeverityError, Evidence: ev})
}

// LotSizeCheck validates option quantities against the contract lot size
// table, keyed by the instrument root. Two evidence streams: "Lot Quantity"
// for quantities that disagree with the recorded lot size, and
// "Unknown Symbol" for rows whose root cannot be extracted or is absent
// from the table. Rows with a null symbol or quantity are left to the nulls
// check.
type LotSizeCheck struct {
	Lots *tradelog.LotBook
}

func (LotSizeCheck) Name() string { return "Option Quantity" }

func (c LotSizeCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	quantity := NewEvidence(append(tradelog.Header(), "LotSize")...)
	unknown := NewEvidence(tradelog.Header()...)

	for _, tr := range tbl.Trades() {
		if tr.IsNull(tradelog.ColSymbol) || tr.IsNull(tradelog.ColQuantity) {
			continue
		}
		root, ok := symbolRoot(tr.Symbol)
		var size float64
		if ok {
			size, ok = c.Lots.Size(root)
		}
		if !ok {
			if err := unknown.Append(tr.EvidenceRow()...); err != nil {
				return Outcome{}, err
			}
			continue
		}
		if tr.Quantity != size {
			if err := quantity.Append(append(tr.EvidenceRow(), size)...); err != nil {
				return Outcome{}, err
			}
		}
	}

	var issues []Issue
	if quantity.Len() > 0 {
		issues = append(issues, Issue{Type: IssueLotQuantity, Severity: SeverityError, Evidence: quantity})
	}
	if unknown.Len() > 0 {
		issues = append(issues, Issue{Type: IssueUnknownSymbol, Severity: SeverityError, Evidence: unknown})
	}
	if len(issues) == 0 {
		return Pass(c.Name(), SegmentOptions, "quantities consistent with lot sizes"), nil
	}
	return Failure(c.Name(), SegmentOptions, "lot size violations detected", issues...)
}
