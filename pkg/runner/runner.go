package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/tradecheck/pkg/check"
	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

// Runner executes a fixed, ordered list of checks.
type Runner struct {
	checks   []check.Checker
	parallel bool
	log      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallel evaluates checks concurrently. Outcome order still follows
// check declaration order.
func WithParallel() Option {
	return func(r *Runner) { r.parallel = true }
}

// WithLogger sets the logger used for per-check progress. Nil loggers are
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a runner over the given checks, preserving their order.
func New(checks []check.Checker, opts ...Option) *Runner {
	r := &Runner{
		checks: checks,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default assembles the standard ordered check set: validation checks
// first, informational checks last. The reference price check is included
// only when a price book is supplied.
func Default(cfg check.Config, book *tradelog.PriceBook, opts ...Option) *Runner {
	checks := validationChecks(cfg, book)
	return New(append(checks, infoChecks()...), opts...)
}

// ForOptions assembles the Default set plus the option-segment checks:
// contract expiry validation and, when a lot book is supplied, lot size
// quantity validation.
func ForOptions(cfg check.Config, book *tradelog.PriceBook, lots *tradelog.LotBook, opts ...Option) *Runner {
	checks := validationChecks(cfg, book)
	checks = append(checks, check.ExpiryCheck{})
	if lots != nil {
		checks = append(checks, check.LotSizeCheck{Lots: lots})
	}
	return New(append(checks, infoChecks()...), opts...)
}

func validationChecks(cfg check.Config, book *tradelog.PriceBook) []check.Checker {
	checks := []check.Checker{
		check.NullsCheck{},
		check.NonZeroCheck{},
		check.FractionalCheck{},
		check.ExitAfterEntryCheck{},
		check.MarketHoursCheck{Config: cfg},
		check.PnlCheck{Config: cfg},
		check.NegativesCheck{},
		check.DuplicateRowsCheck{},
	}
	if book != nil {
		checks = append(checks, check.ReferencePriceCheck{Book: book, Config: cfg})
	}
	return checks
}

func infoChecks() []check.Checker {
	return []check.Checker{
		check.PnlDistributionCheck{},
		check.TradeDurationCheck{},
		check.ConcurrentPositionsCheck{},
	}
}

// Result is the outcome of one validation run.
type Result struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Outcomes  []check.Outcome
}

// Run evaluates every check against the table. The result always contains
// one outcome per check, in declaration order, even when individual checks
// error or the context is canceled mid-run.
func (r *Runner) Run(ctx context.Context, tbl *tradelog.Table) Result {
	res := Result{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Outcomes:  make([]check.Outcome, len(r.checks)),
	}

	if r.parallel {
		var g errgroup.Group
		for i, c := range r.checks {
			i, c := i, c
			g.Go(func() error {
				res.Outcomes[i] = r.evaluate(ctx, c, tbl)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, c := range r.checks {
			res.Outcomes[i] = r.evaluate(ctx, c, tbl)
		}
	}

	res.Duration = time.Since(res.StartedAt)
	r.log.InfoContext(ctx, "validation run completed",
		slog.String("run_id", res.RunID.String()),
		slog.Int("checks", len(r.checks)),
		slog.Duration("duration", res.Duration),
	)
	return res
}

// evaluate wraps a single check invocation in the fault boundary: errors,
// panics, and context cancellation all become a synthetic "Rule Error"
// failure instead of aborting the run.
func (r *Runner) evaluate(ctx context.Context, c check.Checker, tbl *tradelog.Table) (out check.Outcome) {
	defer func() {
		if p := recover(); p != nil {
			r.log.ErrorContext(ctx, "check panicked",
				slog.String("check", c.Name()), slog.Any("panic", p))
			out = check.RuleError(c.Name(), check.SegmentGeneral, fmt.Errorf("panic: %v", p))
		}
	}()

	if err := ctx.Err(); err != nil {
		return check.RuleError(c.Name(), check.SegmentGeneral, err)
	}

	res, err := c.Evaluate(tbl)
	if err != nil {
		r.log.ErrorContext(ctx, "check failed to execute",
			slog.String("check", c.Name()), slog.Any("error", err))
		return check.RuleError(c.Name(), check.SegmentGeneral, err)
	}
	r.log.DebugContext(ctx, "check completed",
		slog.String("check", c.Name()), slog.String("status", string(res.Status)))
	return res
}
