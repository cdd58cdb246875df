// Package tradelog provides the row-identified trade table consumed by the
// validation engine, plus the read-only reference price book used by
// price-match checks.
//
// A Table is an immutable, ordered collection of Trade rows. Every row
// carries a unique, non-negative integer identity (Idx) assigned once at
// load time; Idx is the join key between rule evidence and the original
// rows and is never reused or reassigned during a run.
//
// # Null handling
//
// CSV cells that are empty or unparseable are recorded in a per-row null
// set rather than being silently zeroed. Rules inspect nulls through
// Trade.IsNull; Trade.Value returns nil for a null cell so evidence rows
// reflect the missing data.
//
// # Epoch columns
//
// KeyEpoch and ExitEpoch are derived integer columns holding the entry and
// exit instants as microseconds since the Unix epoch. Timestamps the loader
// cannot parse are coerced to the sentinel value 0, which downstream checks
// must treat as "unparseable", never as a valid instant.
//
// # Usage
//
//	tbl, err := tradelog.LoadCSV(f)
//	if err != nil {
//	    // handle error
//	}
//	trade, ok := tbl.Lookup(42)
package tradelog
