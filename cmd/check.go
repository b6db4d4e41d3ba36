package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"bom-checker/core/config"
	"bom-checker/core/logger"
	"bom-checker/core/storage"
	"bom-checker/feature/bom"
	"bom-checker/feature/check"
	"bom-checker/feature/lookup"
	"bom-checker/feature/report"
	"bom-checker/feature/taxonomy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrMismatchesFound is returned by check when --fail-on-mismatch is set and mismatches exist.
var ErrMismatchesFound = errors.New("mismatches found")

// checkOptions holds the flags of the check command.
type checkOptions struct {
	Format         string
	Output         string
	Upload         string
	FailOnMismatch bool
}

var checkOpts checkOptions

// checkCmd runs the BOM cross-check.
var checkCmd = &cobra.Command{
	Use:   "check <bom>",
	Short: "Check a BOM for package and mount type mismatches",
	Long: `Reads a BOM (a local file or s3://bucket/key), looks up every distributor
part number and reports the lines whose footprint disagrees with the distributor's
package or mounting type.

Examples:
  # Check a local KiBoM export
  bom-checker check board_bom.csv

  # Read the BOM from object storage and store a JSON report next to it
  bom-checker check s3://boms/board/bom.csv --format json --upload board/report.json

  # Fail (exit 1) when anything mismatches, for CI
  bom-checker check board_bom.csv --fail-on-mismatch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, tax, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		return runCheck(cmd.Context(), cfg, l, tax, args[0], checkOpts, cmd.OutOrStdout())
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkOpts.Format, "format", "f", "", "Report format (text, table, json, yaml); auto-detected when empty")
	checkCmd.Flags().StringVarP(&checkOpts.Output, "output", "o", "", "Write the report to a file instead of stdout")
	checkCmd.Flags().StringVar(&checkOpts.Upload, "upload", "", "Upload the report to s3://bucket/key, or to a key in the configured bucket")
	checkCmd.Flags().BoolVar(&checkOpts.FailOnMismatch, "fail-on-mismatch", false, "Exit with an error when any mismatch is found")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context, cfg *config.Config, l *zap.Logger, tax *taxonomy.Taxonomy, location string, opts checkOptions, stdout io.Writer) error {
	startTime := time.Now()

	l, runID := logger.WithRunID(l)

	formatName := opts.Format
	if formatName == "" {
		formatName = cfg.Report.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	format = report.DetectFormat(format)

	uploadLocation := opts.Upload
	if uploadLocation != "" && !storage.IsLocation(uploadLocation) {
		uploadLocation = storage.LocationScheme + cfg.Storage.Bucket + "/" + uploadLocation
	}

	var client storage.Client
	if storage.IsLocation(location) || uploadLocation != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	l.Info("Checking BOM", zap.String("bom", location))

	rows, err := readBOM(ctx, client, location, cfg.BOM)
	if err != nil {
		return err
	}

	provider, err := lookup.NewProvider(cfg.Lookup, l)
	if err != nil {
		return fmt.Errorf("failed to create lookup provider: %w", err)
	}

	result, err := check.NewService(provider, tax, l).Run(ctx, rows)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	var buf bytes.Buffer
	if err := report.NewFormatter(format).Format(&buf, result); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", opts.Output))
	} else if _, err := stdout.Write(buf.Bytes()); err != nil {
		return err
	}

	if uploadLocation != "" {
		if err := report.Upload(ctx, client, uploadLocation, format, runID, buf.Bytes()); err != nil {
			return err
		}
		l.Info("Report uploaded", zap.String("location", uploadLocation))
	}

	s := result.Summary
	l.Info("Check complete",
		zap.Int("rows", s.Rows),
		zap.Int("checked", s.Checked),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("not_found", s.NotFound),
		zap.Int("malformed", s.Malformed),
		zap.Int("no_part_number", s.NoPartNumber),
		zap.Duration("duration", time.Since(startTime)),
	)

	if opts.FailOnMismatch && s.Mismatches > 0 {
		return fmt.Errorf("%w: %d", ErrMismatchesFound, s.Mismatches)
	}
	return nil
}

func readBOM(ctx context.Context, client storage.Client, location string, layout bom.Config) ([]bom.Row, error) {
	src, err := bom.Open(ctx, client, location)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	rows, err := bom.NewReader(src, layout).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read BOM: %w", err)
	}
	return rows, nil
}
