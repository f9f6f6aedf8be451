package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cferraz/acordaos-tracker/internal/common"
	"github.com/cferraz/acordaos-tracker/internal/export"
	"github.com/cferraz/acordaos-tracker/internal/ingest"
	"github.com/cferraz/acordaos-tracker/internal/pdftext"
	"github.com/cferraz/acordaos-tracker/internal/pipeline"
)

var (
	batchDir     string
	batchOut     string
	batchFormat  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of ruling PDFs into one tabular dataset",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory to process rulings from (required)")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output file path (defaults to <dir>/../acordaos.<format>)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "xlsx", "output format: xlsx or csv")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent documents (defaults to BATCH_WORKERS or GOMAXPROCS)")
	_ = batchCmd.MarkFlagRequired("dir")
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	if batchFormat != "xlsx" && batchFormat != "csv" {
		return fmt.Errorf("invalid --format %q, use xlsx or csv", batchFormat)
	}
	if batchOut == "" {
		batchOut = filepath.Join(filepath.Dir(batchDir), "acordaos."+batchFormat)
	}

	cfg := common.LoadConfig()
	if batchWorkers > 0 {
		cfg.Batch.Workers = batchWorkers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	logger.Info("starting scan", "dir", batchDir)
	files, stats, err := ingest.ScanDirectory(batchDir, cfg.Batch.IncludeExts, cfg.Batch.SkipHidden)
	if err != nil {
		return fmt.Errorf("scan directory: %w", err)
	}
	logger.Info("scan complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"failed", stats.Failed,
	)

	processor := pipeline.NewProcessor(logger, pdftext.NewExtractor(logger))
	records, batchStats, err := processor.ProcessBatch(ctx, files, cfg.Batch.Workers)
	if err != nil {
		return fmt.Errorf("process batch: %w", err)
	}

	svc, err := export.NewService(cfg.Export, logger)
	if err != nil {
		return err
	}
	var out []byte
	if batchFormat == "csv" {
		out, err = svc.ExportCSV(records)
	} else {
		out, err = svc.ExportXLSX(records)
	}
	if err != nil {
		return fmt.Errorf("export records: %w", err)
	}
	if err := os.WriteFile(batchOut, out, 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("batch processing complete",
		"files_matched", stats.Matched,
		"files_processed", batchStats.Processed,
		"failures", batchStats.Failed,
		"output_file", batchOut,
	)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files matched: %d\n", stats.Matched)
	fmt.Printf("- Files processed: %d\n", batchStats.Processed)
	fmt.Printf("- Failures: %d\n", batchStats.Failed)
	fmt.Printf("- Output: %s\n", batchOut)
	return nil
}
