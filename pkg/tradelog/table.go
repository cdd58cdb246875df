package tradelog

import "fmt"

// Table is an immutable, ordered collection of trades with O(1) lookup by
// row idx. Construct with NewTable; the engine never mutates a table after
// construction.
type Table struct {
	trades []Trade
	byIdx  map[int64]int
}

// NewTable builds a table from the given rows, validating that every idx is
// non-negative and unique.
func NewTable(trades []Trade) (*Table, error) {
	byIdx := make(map[int64]int, len(trades))
	for i, tr := range trades {
		if tr.Idx < 0 {
			return nil, fmt.Errorf("%w: row %d has idx %d", ErrNegativeIdx, i, tr.Idx)
		}
		if prev, ok := byIdx[tr.Idx]; ok {
			return nil, fmt.Errorf("%w: idx %d at rows %d and %d", ErrDuplicateIdx, tr.Idx, prev, i)
		}
		byIdx[tr.Idx] = i
	}
	return &Table{trades: trades, byIdx: byIdx}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.trades)
}

// Trades returns the rows in load order. The returned slice is shared;
// callers must treat it as read-only.
func (t *Table) Trades() []Trade {
	return t.trades
}

// Lookup returns the row with the given idx.
func (t *Table) Lookup(idx int64) (Trade, bool) {
	i, ok := t.byIdx[idx]
	if !ok {
		return Trade{}, false
	}
	return t.trades[i], true
}
