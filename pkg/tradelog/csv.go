package tradelog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the expected wall-clock layout of the Key and ExitTime
// columns. Timestamps that fail to parse under this layout (or RFC 3339)
// produce the epoch sentinel 0.
const TimeLayout = "2006-01-02 15:04:05"

// requiredColumns must all be present in the trade log header.
var requiredColumns = []Column{
	ColKey,
	ColExitTime,
	ColSymbol,
	ColEntryPrice,
	ColExitPrice,
	ColQuantity,
	ColPositionStatus,
	ColPnl,
	ColExitType,
}

// LoadCSV reads a trade log and builds the row-identified table. Row idx is
// assigned sequentially from 0 in file order. Empty or unparseable cells
// are recorded as nulls rather than rejected; the validation engine is the
// place where missing data becomes a finding.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Join(ErrReadingInput, err)
	}

	pos := make(map[Column]int, len(header))
	for i, name := range header {
		pos[Column(strings.TrimSpace(name))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := pos[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	var trades []Trade
	var idx int64
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrReadingInput, err)
		}

		tr := Trade{Idx: idx}
		tr.Key = stringCell(record, pos, ColKey, &tr)
		tr.ExitTime = stringCell(record, pos, ColExitTime, &tr)
		tr.Symbol = stringCell(record, pos, ColSymbol, &tr)
		tr.ExitType = stringCell(record, pos, ColExitType, &tr)
		tr.EntryPrice = floatCell(record, pos, ColEntryPrice, &tr)
		tr.ExitPrice = floatCell(record, pos, ColExitPrice, &tr)
		tr.Quantity = floatCell(record, pos, ColQuantity, &tr)
		tr.PositionStatus = floatCell(record, pos, ColPositionStatus, &tr)
		tr.Pnl = floatCell(record, pos, ColPnl, &tr)
		tr.KeyEpoch = parseEpoch(tr.Key)
		tr.ExitEpoch = parseEpoch(tr.ExitTime)

		trades = append(trades, tr)
		idx++
	}

	return NewTable(trades)
}

// LoadPriceBookCSV reads a reference price table with columns ti (epoch
// seconds bucket), sym, and c (price). Rows with unparseable numeric cells
// are skipped; the reference source is advisory, not validated.
func LoadPriceBookCSV(r io.Reader) (*PriceBook, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Join(ErrReadingInput, err)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"ti", "sym", "c"} {
		if _, ok := pos[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	book := NewPriceBook()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrReadingInput, err)
		}

		bucket, err := strconv.ParseInt(strings.TrimSpace(record[pos["ti"]]), 10, 64)
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[pos["c"]]), 64)
		if err != nil {
			continue
		}
		book.Add(bucket, strings.TrimSpace(record[pos["sym"]]), price)
	}

	return book, nil
}

// LoadLotBookCSV reads a contract lot size table with columns Symbol (root
// symbol) and LotSize. Rows with an unparseable size are skipped.
func LoadLotBookCSV(r io.Reader) (*LotBook, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Join(ErrReadingInput, err)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"Symbol", "LotSize"} {
		if _, ok := pos[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	book := NewLotBook()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrReadingInput, err)
		}

		size, err := strconv.ParseFloat(strings.TrimSpace(record[pos["LotSize"]]), 64)
		if err != nil {
			continue
		}
		book.Add(strings.TrimSpace(record[pos["Symbol"]]), size)
	}

	return book, nil
}

func stringCell(record []string, pos map[Column]int, c Column, tr *Trade) string {
	i, ok := pos[c]
	if !ok || i >= len(record) {
		tr.MarkNull(c)
		return ""
	}
	v := strings.TrimSpace(record[i])
	if v == "" {
		tr.MarkNull(c)
	}
	return v
}

func floatCell(record []string, pos map[Column]int, c Column, tr *Trade) float64 {
	i, ok := pos[c]
	if !ok || i >= len(record) {
		tr.MarkNull(c)
		return 0
	}
	raw := strings.TrimSpace(record[i])
	if raw == "" {
		tr.MarkNull(c)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		tr.MarkNull(c)
		return 0
	}
	return v
}

// parseEpoch converts a timestamp cell to epoch microseconds, returning the
// sentinel 0 when the cell is empty or unparseable.
func parseEpoch(s string) int64 {
	if s == "" {
		return 0
	}
	ts, err := time.Parse(TimeLayout, s)
	if err != nil {
		ts, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return 0
		}
	}
	return ts.UTC().UnixMicro()
}
