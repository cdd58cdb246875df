// Package check defines the rule contract and standardized outcome model of
// the trade-log validation engine, together with the concrete data-quality,
// business-correctness, and informational checks.
//
// A Checker is a pure function over an immutable tradelog.Table: it never
// mutates the table (or any auxiliary reference data) and is deterministic
// for identical inputs. Evaluation produces an Outcome carrying a status
// (PASS, FAIL, or INFO), a short human message, and — for failures — one or
// more evidence streams keyed by issue type.
//
// # Evidence
//
// Each evidence block is a header of ordered field names plus zero or more
// fixed-arity rows aligned positionally with the header. Arity is enforced
// at construction time: Evidence.Append rejects rows whose length does not
// match the header. Joinable evidence carries the row idx as one of its
// header fields; the report package locates it by name.
//
// # Severity
//
// Every issue type maps to a Severity of ERROR or WARNING. The lookup is
// total: Outcome.SeverityFor returns ERROR for any issue type the outcome
// did not classify, so downstream reporting never sees an unclassified
// violation.
//
// A single checker may emit multiple issue types with different severities
// from one evaluation pass. The PnL consistency check does exactly that: a
// hard expected-versus-reported mismatch as ERROR and a softer exit-reason
// contradiction as WARNING, both computed from the same pass.
//
// # Informational checks
//
// Informational checkers never fail. They return StatusInfo with computed
// summary metrics (PnL distribution, trade duration, concurrent open
// positions) and carry no row evidence. An empty table yields an INFO
// outcome with no metrics, not an error.
package check
