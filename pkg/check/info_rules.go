package check

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

const microsPerDay = 86400 * 1e6

// PnlDistributionCheck reports mean, min, and max of the reported PnL.
// Rows with a null PnL are excluded from the statistics.
type PnlDistributionCheck struct{}

func (PnlDistributionCheck) Name() string { return "Pnl Distribution" }

func (c PnlDistributionCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	var values []float64
	for _, tr := range tbl.Trades() {
		if tr.IsNull(tradelog.ColPnl) {
			continue
		}
		values = append(values, tr.Pnl)
	}
	if len(values) == 0 {
		return Info(c.Name(), SegmentUniversal, "no pnl values"), nil
	}
	mean, min, max := summarize(values)
	return Info(c.Name(), SegmentUniversal, "pnl distribution",
		Metric{Name: "mean", Value: fmt.Sprintf("%.4f", mean)},
		Metric{Name: "min", Value: fmt.Sprintf("%.4f", min)},
		Metric{Name: "max", Value: fmt.Sprintf("%.4f", max)},
	), nil
}

// TradeDurationCheck reports mean, min, and max holding time in whole-day
// units, derived from the exit minus entry instant. Rows with a sentinel
// epoch have no measurable duration and are excluded.
type TradeDurationCheck struct{}

func (TradeDurationCheck) Name() string { return "Trade Duration" }

func (c TradeDurationCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	var days []float64
	for _, tr := range tbl.Trades() {
		if tr.KeyEpoch == 0 || tr.ExitEpoch == 0 {
			continue
		}
		days = append(days, float64(tr.ExitEpoch-tr.KeyEpoch)/microsPerDay)
	}
	if len(days) == 0 {
		return Info(c.Name(), SegmentUniversal, "no measurable durations"), nil
	}
	mean, min, max := summarize(days)
	return Info(c.Name(), SegmentUniversal, "trade duration in days",
		Metric{Name: "mean", Value: fmt.Sprintf("%.4f days", mean)},
		Metric{Name: "min", Value: fmt.Sprintf("%.4f days", min)},
		Metric{Name: "max", Value: fmt.Sprintf("%.4f days", max)},
	), nil
}

// ConcurrentPositionsCheck reports how many positions were open at once:
// it builds a signed event stream (+1 at each entry instant, -1 at each
// exit instant), sorts it by instant with entries ordered before exits at
// equal instants, and summarizes the running sum over moments where at
// least one position is open. Rows with a sentinel epoch are excluded.
type ConcurrentPositionsCheck struct{}

func (ConcurrentPositionsCheck) Name() string { return "Concurrent Positions" }

func (c ConcurrentPositionsCheck) Evaluate(tbl *tradelog.Table) (Outcome, error) {
	type event struct {
		ts    int64
		delta int
	}
	var events []event
	for _, tr := range tbl.Trades() {
		if tr.KeyEpoch == 0 || tr.ExitEpoch == 0 {
			continue
		}
		events = append(events, event{ts: tr.KeyEpoch, delta: +1}, event{ts: tr.ExitEpoch, delta: -1})
	}
	if len(events) == 0 {
		return Info(c.Name(), SegmentUniversal, "no open positions"), nil
	}

	// Entries sort before exits at equal instants.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ts != events[j].ts {
			return events[i].ts < events[j].ts
		}
		return events[i].delta > events[j].delta
	})

	var open, sum, count int
	min, max := 0, 0
	for _, e := range events {
		open += e.delta
		if open <= 0 {
			continue
		}
		if count == 0 || open < min {
			min = open
		}
		if open > max {
			max = open
		}
		sum += open
		count++
	}
	if count == 0 {
		return Info(c.Name(), SegmentUniversal, "no open positions"), nil
	}
	return Info(c.Name(), SegmentUniversal, "concurrent open positions",
		Metric{Name: "min", Value: fmt.Sprintf("%d", min)},
		Metric{Name: "max", Value: fmt.Sprintf("%d", max)},
		Metric{Name: "mean", Value: fmt.Sprintf("%.4f", float64(sum)/float64(count))},
	), nil
}

// summarize returns mean, min, and max of a non-empty slice.
func summarize(values []float64) (mean, min, max float64) {
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return sum / float64(len(values)), min, max
}
