package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// WriteCSV writes the violation records in the report's output schema:
// every original column except the derived epoch columns, in original
// order, followed by IssueType and IssueLevel. Null cells render empty.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	cols := tradelog.ReportColumns()
	header := make([]string, 0, len(cols)+2)
	for _, c := range cols {
		header = append(header, string(c))
	}
	header = append(header, "IssueType", "IssueLevel")
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, v := range r.Violations {
		record = record[:0]
		for _, c := range cols {
			record = append(record, formatCell(v.Trade.Value(c)))
		}
		record = append(record, v.IssueType, string(v.Level))
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return fmt.Sprintf("%v", n)
	}
}
