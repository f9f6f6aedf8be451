package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "acordaos",
	Short: "Extract structured metadata from Brazilian court-ruling PDFs",
	Long: `Acordaos extracts structured legal-case metadata from acórdão documents:
case number, state, ruling type, judgment date, party names by procedural
role, bank name, and the inferred outcome for the bank.

The pipeline includes:
  - PDF plain-text extraction
  - Pattern-based field extraction over noisy scanned text
  - Party-block parsing with role-labeled entries
  - Rule-based outcome classification for the detected bank
  - Tabular export (XLSX or CSV)`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(extractCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
