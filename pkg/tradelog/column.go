package tradelog

// Column identifies a single column of the trade table.
type Column string

const (
	ColIdx            Column = "idx"
	ColKey            Column = "Key"
	ColExitTime       Column = "ExitTime"
	ColSymbol         Column = "Symbol"
	ColEntryPrice     Column = "EntryPrice"
	ColExitPrice      Column = "ExitPrice"
	ColQuantity       Column = "Quantity"
	ColPositionStatus Column = "PositionStatus"
	ColPnl            Column = "Pnl"
	ColExitType       Column = "ExitType"
	ColKeyEpoch       Column = "KeyEpoch"
	ColExitEpoch      Column = "ExitEpoch"
)

// columns is the canonical column order. Evidence rows and report rows
// follow this order.
var columns = []Column{
	ColIdx,
	ColKey,
	ColExitTime,
	ColSymbol,
	ColEntryPrice,
	ColExitPrice,
	ColQuantity,
	ColPositionStatus,
	ColPnl,
	ColExitType,
	ColKeyEpoch,
	ColExitEpoch,
}

// derived columns are computed by the loader and excluded from reports.
var derivedColumns = map[Column]bool{
	ColKeyEpoch:  true,
	ColExitEpoch: true,
}

// Columns returns all columns in canonical order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// ReportColumns returns the canonical columns minus the derived epoch
// columns, i.e. the columns that appear in violation reports.
func ReportColumns() []Column {
	out := make([]Column, 0, len(columns)-len(derivedColumns))
	for _, c := range columns {
		if !derivedColumns[c] {
			out = append(out, c)
		}
	}
	return out
}

// Header returns the canonical column names as strings, suitable for an
// evidence block header.
func Header() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = string(c)
	}
	return out
}

// IsDerived reports whether the column is loader-derived.
func IsDerived(c Column) bool {
	return derivedColumns[c]
}
