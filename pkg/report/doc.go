// Package report turns failing check outcomes into a deduplicated,
// row-level violation report joined back to the original trade table.
//
// For every failing outcome, each issue type's evidence block is expanded:
// the idx field is located in the evidence header, the idx value is read
// from every data row, and the full original row is looked up in the table.
// Each (row, issue type) pair becomes one Violation carrying the issue type
// and its severity; the severity lookup is total, defaulting to ERROR for
// issue types the outcome did not classify.
//
// # Error handling
//
// Malformed evidence — a header without an idx field, a row whose arity
// does not match the header, or an idx value that is not an integer —
// skips that issue type's rows and is recorded on the report rather than
// aborting it. A stale idx (evidence referencing a row absent from the
// table) aborts report generation: it signals that the evidence was built
// from a different table than the one being reported against.
//
// Two evidence rows flagging the same (idx, issue type) pair, whether from
// one outcome or several, produce a single violation record.
package report
