package check_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tradecheck/pkg/check"
	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// mustEpoch converts a wall-clock timestamp to epoch microseconds.
func mustEpoch(s string) int64 {
	ts, err := time.Parse(tradelog.TimeLayout, s)
	if err != nil {
		panic(err)
	}
	return ts.UTC().UnixMicro()
}

// cleanTrade returns a row that passes every validation check: in-window
// timestamps, positive whole quantity, and a reported PnL matching
// Quantity*(ExitPrice-EntryPrice)*PositionStatus.
func cleanTrade(idx int64) tradelog.Trade {
	return tradelog.Trade{
		Idx:            idx,
		Key:            "2024-01-05 10:00:00",
		ExitTime:       "2024-01-05 14:00:00",
		Symbol:         "NIFTY",
		EntryPrice:     100,
		ExitPrice:      110,
		Quantity:       10,
		PositionStatus: 1,
		Pnl:            100,
		ExitType:       "Target Hit",
		KeyEpoch:       mustEpoch("2024-01-05 10:00:00"),
		ExitEpoch:      mustEpoch("2024-01-05 14:00:00"),
	}
}

func mustTable(t *testing.T, trades ...tradelog.Trade) *tradelog.Table {
	t.Helper()
	tbl, err := tradelog.NewTable(trades)
	require.NoError(t, err)
	return tbl
}

// evidenceIdxs extracts the idx column of the named issue's evidence rows.
func evidenceIdxs(t *testing.T, out check.Outcome, issueType string) []int64 {
	t.Helper()
	for _, issue := range out.Issues() {
		if issue.Type != issueType {
			continue
		}
		header := issue.Evidence.Header()
		pos := -1
		for i, field := range header {
			if field == string(tradelog.ColIdx) {
				pos = i
				break
			}
		}
		require.GreaterOrEqual(t, pos, 0, "evidence header lacks idx")
		idxs := make([]int64, 0, issue.Evidence.Len())
		for _, row := range issue.Evidence.Rows() {
			idx, ok := row[pos].(int64)
			require.True(t, ok, "idx cell is not int64")
			idxs = append(idxs, idx)
		}
		return idxs
	}
	t.Fatalf("outcome %q has no issue %q", out.Name, issueType)
	return nil
}
