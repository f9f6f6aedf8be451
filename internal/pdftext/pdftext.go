// Package pdftext turns a scanned/typed PDF ruling into a single plain-text
// string for the extraction pipeline.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dslipak/pdf"
)

// Extractor reads PDF files and concatenates the plain text of every page.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract returns the document's full text, lightly cleaned up. A failure to
// open or decode the file is reported as an error; it never aborts a batch.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read text from %s: %w", path, err)
	}
	text := Cleanup(buf.String())
	e.logger.Debug("pdf text extracted", "path", path, "bytes", len(text))
	return text, nil
}
