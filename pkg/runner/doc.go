// Package runner executes an ordered set of checks against a trade table
// and collects one outcome per check.
//
// Checks are isolated from each other: a check that returns an error or
// panics is converted into a synthetic FAIL outcome carrying the "Rule
// Error" issue type, and the run continues. The outcome list always has
// one entry per configured check, in declaration order, so downstream
// reporting is deterministic.
//
// Checks share no mutable state, so the runner can evaluate them
// concurrently. WithParallel enables that; outcome collection still
// preserves declaration order.
//
// # Usage
//
//	r := runner.Default(check.DefaultConfig(), book)
//	result := r.Run(ctx, tbl)
//	for _, out := range result.Outcomes {
//	    // ...
//	}
package runner
