package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cferraz/acordaos-tracker/internal/pdftext"
	"github.com/cferraz/acordaos-tracker/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract one ruling's record and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		processor := pipeline.NewProcessor(logger, pdftext.NewExtractor(logger))
		rec, err := processor.ProcessFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("process %s: %w", args[0], err)
		}
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
