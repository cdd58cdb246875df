package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tradecheck/pkg/check"
	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// bookFor registers reference prices at the lookup buckets of the trade:
// trade instant in epoch seconds minus the default 60 second lookback.
func bookFor(tr tradelog.Trade, entry, exit float64) *tradelog.PriceBook {
	book := tradelog.NewPriceBook()
	book.Add(tr.KeyEpoch/1e6-60, tr.Symbol, entry)
	book.Add(tr.ExitEpoch/1e6-60, tr.Symbol, exit)
	return book
}

func TestReferencePriceCheck(t *testing.T) {
	t.Parallel()

	cfg := check.DefaultConfig()

	t.Run("passes when both prices match", func(t *testing.T) {
		tr := cleanTrade(0)
		c := check.ReferencePriceCheck{Book: bookFor(tr, 100, 110), Config: cfg}

		out, err := c.Evaluate(mustTable(t, tr))
		require.NoError(t, err)
		assert.Equal(t, check.StatusPass, out.Status)
	})

	t.Run("difference within tolerance passes", func(t *testing.T) {
		tr := cleanTrade(0)
		c := check.ReferencePriceCheck{Book: bookFor(tr, 100.00005, 110), Config: cfg}

		out, err := c.Evaluate(mustTable(t, tr))
		require.NoError(t, err)
		assert.Equal(t, check.StatusPass, out.Status)
	})

	t.Run("flags price mismatch beyond tolerance", func(t *testing.T) {
		tr := cleanTrade(0)
		c := check.ReferencePriceCheck{Book: bookFor(tr, 101, 110), Config: cfg}

		out, err := c.Evaluate(mustTable(t, tr))
		require.NoError(t, err)
		assert.Equal(t, []int64{0}, evidenceIdxs(t, out, check.IssueReferencePrice))
	})

	t.Run("flags missing reference price", func(t *testing.T) {
		tr := cleanTrade(0)
		book := tradelog.NewPriceBook()
		book.Add(tr.KeyEpoch/1e6-60, tr.Symbol, 100) // exit bucket absent
		c := check.ReferencePriceCheck{Book: book, Config: cfg}

		out, err := c.Evaluate(mustTable(t, tr))
		require.NoError(t, err)
		assert.Equal(t, []int64{0}, evidenceIdxs(t, out, check.IssueReferencePrice))
	})

	t.Run("flags sentinel epochs", func(t *testing.T) {
		tr := cleanTrade(0)
		tr.KeyEpoch = 0
		c := check.ReferencePriceCheck{Book: bookFor(cleanTrade(0), 100, 110), Config: cfg}

		out, err := c.Evaluate(mustTable(t, tr))
		require.NoError(t, err)
		assert.Equal(t, []int64{0}, evidenceIdxs(t, out, check.IssueReferencePrice))
	})

	t.Run("honors configured lookback", func(t *testing.T) {
		tr := cleanTrade(0)
		book := tradelog.NewPriceBook()
		book.Add(tr.KeyEpoch/1e6, tr.Symbol, 100)
		book.Add(tr.ExitEpoch/1e6, tr.Symbol, 110)

		noLookback := check.DefaultConfig()
		noLookback.ReferenceLookback = 0
		c := check.ReferencePriceCheck{Book: book, Config: noLookback}

		out, err := c.Evaluate(mustTable(t, tr))
		require.NoError(t, err)
		assert.Equal(t, check.StatusPass, out.Status)
	})

	t.Run("empty table passes", func(t *testing.T) {
		c := check.ReferencePriceCheck{Book: tradelog.NewPriceBook(), Config: cfg}
		out, err := c.Evaluate(mustTable(t))
		require.NoError(t, err)
		assert.Equal(t, check.StatusPass, out.Status)
	})

	t.Run("reason column distinguishes failure causes", func(t *testing.T) {
		sentinel := cleanTrade(0)
		sentinel.KeyEpoch = 0
		mismatch := cleanTrade(1)
		mismatch.Symbol = "BANKNIFTY"
		book := bookFor(mismatch, 101, 110) // entry off by 1
		absent := cleanTrade(2)
		absent.Symbol = "FINNIFTY" // no reference prices at all
		c := check.ReferencePriceCheck{Book: book, Config: cfg}

		out, err := c.Evaluate(mustTable(t, sentinel, mismatch, absent))
		require.NoError(t, err)
		require.Equal(t, []int64{0, 1, 2}, evidenceIdxs(t, out, check.IssueReferencePrice))

		reasons := evidenceColumn(t, out, check.IssueReferencePrice, "Reason")
		assert.Equal(t, "unparseable instant", reasons[0])
		assert.Equal(t, "entry price mismatch", reasons[1])
		assert.Equal(t, "entry reference missing; exit reference missing", reasons[2])
	})
}

// evidenceColumn extracts the named column of the issue's evidence rows.
func evidenceColumn(t *testing.T, out check.Outcome, issueType, column string) []string {
	t.Helper()
	for _, issue := range out.Issues() {
		if issue.Type != issueType {
			continue
		}
		pos := -1
		for i, field := range issue.Evidence.Header() {
			if field == column {
				pos = i
				break
			}
		}
		require.GreaterOrEqual(t, pos, 0, "evidence header lacks %s", column)
		values := make([]string, 0, issue.Evidence.Len())
		for _, row := range issue.Evidence.Rows() {
			v, ok := row[pos].(string)
			require.True(t, ok, "%s cell is not a string", column)
			values = append(values, v)
		}
		return values
	}
	t.Fatalf("outcome %q has no issue %q", out.Name, issueType)
	return nil
}
