package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tradecheck/pkg/check"
	"github.com/dmitrymomot/tradecheck/pkg/report"
	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	outcomes := []check.Outcome{
		failOutcome(t, "Non-Zero Values", check.IssueZeros, check.SeverityError, 0),
		failOutcome(t, "Pnl Validation", check.IssuePnlWarning, check.SeverityWarning, 1),
	}
	rep, err := report.Generate(outcomes, testTable(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	t.Run("header excludes epochs and appends issue columns", func(t *testing.T) {
		header := records[0]
		assert.NotContains(t, header, string(tradelog.ColKeyEpoch))
		assert.NotContains(t, header, string(tradelog.ColExitEpoch))
		require.GreaterOrEqual(t, len(header), 2)
		assert.Equal(t, "IssueType", header[len(header)-2])
		assert.Equal(t, "IssueLevel", header[len(header)-1])
		assert.Equal(t, string(tradelog.ColIdx), header[0])
	})

	t.Run("rows carry original fields and severity", func(t *testing.T) {
		first := records[1]
		assert.Equal(t, "0", first[0])
		assert.Contains(t, first, "NIFTY")
		assert.Equal(t, string(check.SeverityError), first[len(first)-1])

		second := records[2]
		assert.Equal(t, "1", second[0])
		assert.Equal(t, check.IssuePnlWarning, second[len(second)-2])
		assert.Equal(t, string(check.SeverityWarning), second[len(second)-1])
	})

	t.Run("empty report writes header only", func(t *testing.T) {
		empty, err := report.Generate(nil, testTable(t))
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, empty.WriteCSV(&out))
		records, err := csv.NewReader(&out).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
