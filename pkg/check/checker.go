package check

import "github.com/dmitrymomot/tradecheck/pkg/tradelog"

// Checker is the capability interface implemented by every concrete check.
// Evaluate must be pure: no mutation of the table or of any auxiliary
// reference data, and deterministic output for identical inputs. A checker
// that cannot complete returns an error; the runner converts it into a
// synthetic failure outcome without aborting the run.
type Checker interface {
	Name() string
	Evaluate(tbl *tradelog.Table) (Outcome, error)
}
