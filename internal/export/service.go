// Package export serializes assembled records into tabular files. Column
// order is the record's fixed schema order; absent fields become empty
// cells. Records are schema-validated before anything is written.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/xuri/excelize/v2"

	"github.com/cferraz/acordaos-tracker/internal/common"
	"github.com/cferraz/acordaos-tracker/internal/extract"
)

// Service produces XLSX or CSV bytes for a list of records.
type Service struct {
	logger    *slog.Logger
	sheetName string
	schema    *jsonschema.Schema
}

func NewService(cfg common.ExportConfig, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := extract.CompileRecordSchema()
	if err != nil {
		return nil, common.WrapError(err, "compile record schema")
	}
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = "Acordaos"
	}
	return &Service{logger: logger, sheetName: sheet, schema: schema}, nil
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per record.
func (s *Service) ExportXLSX(records []extract.Record) ([]byte, error) {
	start := time.Now()
	if err := s.validate(records); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := s.sheetName
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range extract.Columns() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, r := range records {
		for col, v := range r.Values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the identifier and party columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // processo
	_ = f.SetColWidth(sheet, "B", "B", 28) // tipo_processo
	_ = f.SetColWidth(sheet, "C", "D", 14) // data, estado
	_ = f.SetColWidth(sheet, "E", "M", 36) // parties
	_ = f.SetColWidth(sheet, "N", "N", 24) // banco
	_ = f.SetColWidth(sheet, "O", "O", 18) // decisao

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportCSV returns the records as CSV bytes with a header row.
func (s *Service) ExportCSV(records []extract.Record) ([]byte, error) {
	start := time.Now()
	if err := s.validate(records); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(extract.Columns()); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.Values()); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) validate(records []extract.Record) error {
	for i, r := range records {
		if err := extract.ValidateRecord(s.schema, r); err != nil {
			return common.NewAppError("EXPORT_ERROR", fmt.Sprintf("record %d invalid", i), err)
		}
	}
	return nil
}
