package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tradecheck/pkg/check"
	"github.com/dmitrymomot/tradecheck/pkg/config"
	"github.com/dmitrymomot/tradecheck/pkg/logger"
	"github.com/dmitrymomot/tradecheck/pkg/report"
	"github.com/dmitrymomot/tradecheck/pkg/runner"
	"github.com/dmitrymomot/tradecheck/pkg/tradelog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a trade log and write a violation report",
	Long:  "Runs the full check set against a trade log CSV, optionally matching entry/exit prices against a reference price CSV, and writes a timestamped violation report.",
	RunE:  runValidate,
}

var (
	validateTrades   string
	validatePrices   string
	validateLots     string
	validateSegment  string
	validateProfile  string
	validateOutDir   string
	validateParallel bool
	validateVerbose  bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateTrades, "trades", "t", "", "Trade log CSV path (required)")
	validateCmd.Flags().StringVarP(&validatePrices, "prices", "p", "", "Reference price CSV path")
	validateCmd.Flags().StringVarP(&validateLots, "lots", "l", "", "Contract lot size CSV path (options segment)")
	validateCmd.Flags().StringVarP(&validateSegment, "segment", "s", "universal", "Trading segment: universal or options")
	validateCmd.Flags().StringVar(&validateProfile, "profile", "", "YAML validation profile overriding env configuration")
	validateCmd.Flags().StringVarP(&validateOutDir, "output", "o", "logs", "Directory for the violation report")
	validateCmd.Flags().BoolVar(&validateParallel, "parallel", false, "Evaluate checks concurrently")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Verbose, human-readable logging")

	if err := validateCmd.MarkFlagRequired("trades"); err != nil {
		panic(fmt.Sprintf("failed to mark trades flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := check.DefaultConfig()
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if validateProfile != "" {
		if err := config.LoadFile(validateProfile, &cfg); err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOpt := logger.WithProduction("tradecheck")
	if validateVerbose {
		logOpt = logger.WithDevelopment("tradecheck")
	}
	log := logger.New(logOpt)

	tbl, err := loadTable(validateTrades)
	if err != nil {
		return err
	}
	book, err := loadPriceBook(validatePrices)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "trade log loaded",
		slog.String("path", validateTrades), slog.Int("rows", tbl.Len()))

	opts := []runner.Option{runner.WithLogger(log)}
	if validateParallel {
		opts = append(opts, runner.WithParallel())
	}
	var r *runner.Runner
	switch strings.ToLower(validateSegment) {
	case "universal":
		r = runner.Default(cfg, book, opts...)
	case "options":
		lots, err := loadLotBook(validateLots)
		if err != nil {
			return err
		}
		r = runner.ForOptions(cfg, book, lots, opts...)
	default:
		return fmt.Errorf("unknown segment %q: must be universal or options", validateSegment)
	}
	result := r.Run(ctx, tbl)

	for _, out := range result.Outcomes {
		attrs := []any{
			slog.String("check", out.Name),
			slog.String("segment", out.Segment),
			slog.String("status", string(out.Status)),
		}
		for _, m := range out.Metrics() {
			attrs = append(attrs, slog.String(m.Name, m.Value))
		}
		log.InfoContext(ctx, out.Message, attrs...)
	}

	rep, err := report.Generate(result.Outcomes, tbl)
	if err != nil {
		return fmt.Errorf("failed to generate violation report: %w", err)
	}
	for _, skipped := range rep.Skipped {
		log.WarnContext(ctx, "skipped malformed evidence",
			slog.String("check", skipped.Outcome),
			slog.String("issue_type", skipped.IssueType),
			slog.String("reason", skipped.Reason))
	}

	if len(rep.Violations) == 0 {
		log.InfoContext(ctx, "no violations found")
		return nil
	}

	path, err := writeReport(rep, result.StartedAt)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "violation report written",
		slog.String("path", path),
		slog.Int("errors", rep.Summary.Errors),
		slog.Int("warnings", rep.Summary.Warnings))
	for _, c := range rep.Summary.ByIssueType {
		log.InfoContext(ctx, "issue type breakdown",
			slog.String("issue_type", c.IssueType), slog.Int("count", c.Count))
	}
	return nil
}

func loadTable(path string) (*tradelog.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trade log: %w", err)
	}
	defer f.Close()

	tbl, err := tradelog.LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade log: %w", err)
	}
	return tbl, nil
}

func loadPriceBook(path string) (*tradelog.PriceBook, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference prices: %w", err)
	}
	defer f.Close()

	book, err := tradelog.LoadPriceBookCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference prices: %w", err)
	}
	return book, nil
}

func loadLotBook(path string) (*tradelog.LotBook, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lot sizes: %w", err)
	}
	defer f.Close()

	lots, err := tradelog.LoadLotBookCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load lot sizes: %w", err)
	}
	return lots, nil
}

func writeReport(rep *report.Report, startedAt time.Time) (string, error) {
	if err := os.MkdirAll(validateOutDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	name := fmt.Sprintf("violations_report_%s.csv", startedAt.Format("20060102_150405"))
	path := filepath.Join(validateOutDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := rep.WriteCSV(f); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
