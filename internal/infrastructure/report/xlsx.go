// Package report renders tabular exports as xlsx files.
package report

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const defaultColumnWidth = 22

// XLSXWriter streams rows into a temporary workbook so large exports never sit in memory.
type XLSXWriter struct {
	dir    string
	logger logger.Interface
}

// NewXLSXWriter writes into dir, or the system temp dir when dir is empty.
func NewXLSXWriter(dir string, log logger.Interface) *XLSXWriter {
	return &XLSXWriter{dir: dir, logger: log}
}

func (w *XLSXWriter) Write(ctx context.Context, sheet string, header []string, fill func(emit func(row []any) error) error) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return "", fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to open stream writer: %w", err)
	}
	if len(header) > 0 {
		if err := sw.SetColWidth(1, len(header), defaultColumnWidth); err != nil {
			return "", fmt.Errorf("failed to set column width: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	rowNum := 1
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := w.setRow(sw, rowNum, headerCells, excelize.RowOpts{StyleID: bold}); err != nil {
		return "", err
	}

	emit := func(row []any) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rowNum++
		return w.setRow(sw, rowNum, row)
	}
	if err := fill(emit); err != nil {
		return "", err
	}

	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush workbook: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, "report-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	path := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close report: %w", err)
	}

	w.logger.Debugw("report written", "path", path, "rows", rowNum-1)
	return path, nil
}

func (w *XLSXWriter) setRow(sw *excelize.StreamWriter, rowNum int, row []any, opts ...excelize.RowOpts) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := sw.SetRow(cell, row, opts...); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
