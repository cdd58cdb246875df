package tradelog

// Trade is a single row of the trade log. Fields mirror the canonical
// columns; KeyEpoch and ExitEpoch hold the entry and exit instants in
// microseconds since the Unix epoch, with 0 marking an unparseable
// timestamp.
type Trade struct {
	Idx            int64
	Key            string
	ExitTime       string
	Symbol         string
	EntryPrice     float64
	ExitPrice      float64
	Quantity       float64
	PositionStatus float64
	Pnl            float64
	ExitType       string
	KeyEpoch       int64
	ExitEpoch      int64

	nulls map[Column]struct{}
}

// MarkNull records the given columns as missing for this row. Intended for
// use by loaders; rules treat the table as read-only.
func (t *Trade) MarkNull(cols ...Column) {
	if t.nulls == nil {
		t.nulls = make(map[Column]struct{}, len(cols))
	}
	for _, c := range cols {
		t.nulls[c] = struct{}{}
	}
}

// IsNull reports whether the given column is missing for this row.
func (t Trade) IsNull(c Column) bool {
	_, ok := t.nulls[c]
	return ok
}

// NullColumns returns the missing columns for this row in canonical order.
func (t Trade) NullColumns() []Column {
	if len(t.nulls) == 0 {
		return nil
	}
	var out []Column
	for _, c := range columns {
		if t.IsNull(c) {
			out = append(out, c)
		}
	}
	return out
}

// Value returns the cell value for the given column, or nil when the cell
// is null or the column is unknown.
func (t Trade) Value(c Column) any {
	if t.IsNull(c) {
		return nil
	}
	switch c {
	case ColIdx:
		return t.Idx
	case ColKey:
		return t.Key
	case ColExitTime:
		return t.ExitTime
	case ColSymbol:
		return t.Symbol
	case ColEntryPrice:
		return t.EntryPrice
	case ColExitPrice:
		return t.ExitPrice
	case ColQuantity:
		return t.Quantity
	case ColPositionStatus:
		return t.PositionStatus
	case ColPnl:
		return t.Pnl
	case ColExitType:
		return t.ExitType
	case ColKeyEpoch:
		return t.KeyEpoch
	case ColExitEpoch:
		return t.ExitEpoch
	}
	return nil
}

// EvidenceRow returns the row's values in canonical column order, aligned
// with Header().
func (t Trade) EvidenceRow() []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = t.Value(c)
	}
	return out
}

// SameFields reports whether two rows are identical on every column except
// idx. Null cells compare equal to null cells of the same column.
func (t Trade) SameFields(other Trade) bool {
	for _, c := range columns {
		if c == ColIdx {
			continue
		}
		if t.IsNull(c) != other.IsNull(c) {
			return false
		}
		if !t.IsNull(c) && t.Value(c) != other.Value(c) {
			return false
		}
	}
	return true
}
