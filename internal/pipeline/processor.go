// Package pipeline orchestrates per-document processing: text extraction
// followed by record assembly. Documents are fully independent, so a batch
// fans out one worker per document with no cross-document coordination.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cferraz/acordaos-tracker/internal/extract"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

type Processor struct {
	logger    *slog.Logger
	extractor TextExtractor
}

func NewProcessor(logger *slog.Logger, extractor TextExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, extractor: extractor}
}

// ProcessFile runs one document through text extraction and record
// assembly. Assembly itself cannot fail; only the text stage can.
func (p *Processor) ProcessFile(ctx context.Context, path string) (extract.Record, error) {
	start := time.Now()
	text, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return extract.Record{}, fmt.Errorf("extract text: %w", err)
	}
	rec := extract.ExtractRecord(text)
	p.logger.Info("document processed",
		"path", path,
		"text_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
