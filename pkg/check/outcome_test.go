package check_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tradecheck/pkg/check"
)

func TestEvidence(t *testing.T) {
	t.Parallel()

	t.Run("append matching arity", func(t *testing.T) {
		ev := check.NewEvidence("idx", "Symbol")
		require.NoError(t, ev.Append(int64(1), "NIFTY"))
		assert.Equal(t, 1, ev.Len())
		assert.Equal(t, []string{"idx", "Symbol"}, ev.Header())
	})

	t.Run("rejects arity mismatch", func(t *testing.T) {
		ev := check.NewEvidence("idx", "Symbol")
		err := ev.Append(int64(1))
		require.ErrorIs(t, err, check.ErrEvidenceArity)
		assert.Equal(t, 0, ev.Len())
	})

	t.Run("header is a copy", func(t *testing.T) {
		ev := check.NewEvidence("idx")
		h := ev.Header()
		h[0] = "mutated"
		assert.Equal(t, []string{"idx"}, ev.Header())
	})
}

func TestFailure(t *testing.T) {
	t.Parallel()

	newEvidence := func(t *testing.T) *check.Evidence {
		t.Helper()
		ev := check.NewEvidence("idx")
		require.NoError(t, ev.Append(int64(0)))
		return ev
	}

	t.Run("builds failing outcome", func(t *testing.T) {
		out, err := check.Failure("No Nulls", check.SegmentUniversal, "nulls detected",
			check.Issue{Type: check.IssueNulls, Severity: check.SeverityError, Evidence: newEvidence(t)})
		require.NoError(t, err)
		assert.Equal(t, check.StatusFail, out.Status)
		assert.True(t, out.Failed())
		require.Len(t, out.Issues(), 1)
	})

	t.Run("requires at least one issue", func(t *testing.T) {
		_, err := check.Failure("x", check.SegmentUniversal, "y")
		require.ErrorIs(t, err, check.ErrNoIssues)
	})

	t.Run("requires non-empty evidence", func(t *testing.T) {
		_, err := check.Failure("x", check.SegmentUniversal, "y",
			check.Issue{Type: check.IssueNulls, Evidence: check.NewEvidence("idx")})
		require.ErrorIs(t, err, check.ErrEmptyEvidence)
	})

	t.Run("rejects duplicate issue types", func(t *testing.T) {
		_, err := check.Failure("x", check.SegmentUniversal, "y",
			check.Issue{Type: check.IssueNulls, Evidence: newEvidence(t)},
			check.Issue{Type: check.IssueNulls, Evidence: newEvidence(t)})
		require.ErrorIs(t, err, check.ErrDuplicateIssueType)
	})
}

func TestSeverityFor(t *testing.T) {
	t.Parallel()

	ev := check.NewEvidence("idx")
	require.NoError(t, ev.Append(int64(0)))
	ev2 := check.NewEvidence("idx")
	require.NoError(t, ev2.Append(int64(0)))
	ev3 := check.NewEvidence("idx")
	require.NoError(t, ev3.Append(int64(0)))

	out, err := check.Failure("Pnl Validation", check.SegmentUniversal, "mismatches",
		check.Issue{Type: check.IssuePnl, Severity: check.SeverityError, Evidence: ev},
		check.Issue{Type: check.IssuePnlWarning, Severity: check.SeverityWarning, Evidence: ev2},
		check.Issue{Type: "Unclassified", Evidence: ev3})
	require.NoError(t, err)

	t.Run("returns recorded severity", func(t *testing.T) {
		assert.Equal(t, check.SeverityError, out.SeverityFor(check.IssuePnl))
		assert.Equal(t, check.SeverityWarning, out.SeverityFor(check.IssuePnlWarning))
	})

	t.Run("defaults to error for unclassified issue", func(t *testing.T) {
		assert.Equal(t, check.SeverityError, out.SeverityFor("Unclassified"))
	})

	t.Run("defaults to error for unknown issue type", func(t *testing.T) {
		assert.Equal(t, check.SeverityError, out.SeverityFor("never emitted"))
	})
}

func TestPassAndInfo(t *testing.T) {
	t.Parallel()

	t.Run("pass carries no evidence", func(t *testing.T) {
		out := check.Pass("No Nulls", check.SegmentUniversal, "no nulls found")
		assert.Equal(t, check.StatusPass, out.Status)
		assert.Empty(t, out.Issues())
		assert.False(t, out.Failed())
	})

	t.Run("info carries metrics only", func(t *testing.T) {
		out := check.Info("Pnl Distribution", check.SegmentUniversal, "pnl distribution",
			check.Metric{Name: "mean", Value: "10.0000"})
		assert.Equal(t, check.StatusInfo, out.Status)
		assert.Empty(t, out.Issues())
		require.Len(t, out.Metrics(), 1)
		assert.Equal(t, "mean", out.Metrics()[0].Name)
	})
}

func TestRuleError(t *testing.T) {
	t.Parallel()

	out := check.RuleError("Broken Check", check.SegmentGeneral, errors.New("boom"))
	assert.Equal(t, check.StatusFail, out.Status)
	assert.Contains(t, out.Message, "boom")

	require.Len(t, out.Issues(), 1)
	issue := out.Issues()[0]
	assert.Equal(t, check.IssueRuleError, issue.Type)
	assert.Equal(t, check.SeverityError, issue.Severity)
	assert.Equal(t, []string{"idx"}, issue.Evidence.Header())
	assert.Equal(t, 0, issue.Evidence.Len())
}
