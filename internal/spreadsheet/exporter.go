package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	extension  = ".xlsx"
	totalLabel = "Totals"
)

// Exporter writes sheets into one xlsx workbook.
type Exporter struct {
	file         *excelize.File
	styles       map[cellFormat]int
	defaultSheet string
}

func NewExporter() *Exporter {
	f := excelize.NewFile()

	return &Exporter{
		file:         f,
		styles:       make(map[cellFormat]int),
		defaultSheet: f.GetSheetName(0),
	}
}

// MakeXLSX adds the sheet and saves the workbook to fileName.
func (e *Exporter) MakeXLSX(sheet *Sheet, fileName string) error {
	if err := e.AddSheet(sheet); err != nil {
		return err
	}

	return e.Save(fileName)
}

// AddSheet renders sheet as a new worksheet: filters, merged headers,
// headers, data and, if requested, a totals row.
func (e *Exporter) AddSheet(sheet *Sheet) error {
	if sheet.Name == "" {
		return errors.New("sheet name is required")
	}

	if slices.Contains(e.SheetNames(), sheet.Name) && sheet.Name != e.defaultSheet {
		return fmt.Errorf("sheet %q already exists", sheet.Name)
	}

	if _, err := e.file.NewSheet(sheet.Name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
	}

	// the blank sheet of a new workbook is dropped once a real one exists
	if e.defaultSheet != "" && sheet.Name != e.defaultSheet {
		if err := e.file.DeleteSheet(e.defaultSheet); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}
	e.defaultSheet = ""

	w := &worksheetWriter{exporter: e, sheet: sheet, row: 1}

	return w.write()
}

// Save writes the workbook to fileName, appending the .xlsx extension when missing.
func (e *Exporter) Save(fileName string) error {
	if !strings.HasSuffix(fileName, extension) {
		fileName += extension
	}

	if err := e.file.SaveAs(fileName); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", fileName, err)
	}

	return nil
}

func (e *Exporter) Write(w io.Writer) error {
	if err := e.file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// RemoveSheet deletes the named sheet. Missing sheets are ignored.
func (e *Exporter) RemoveSheet(name string) error {
	if !slices.Contains(e.SheetNames(), name) {
		return nil
	}

	if err := e.file.DeleteSheet(name); err != nil {
		return fmt.Errorf("failed to remove sheet %q: %w", name, err)
	}

	return nil
}

func (e *Exporter) SheetNames() []string {
	return e.file.GetSheetList()
}

func (e *Exporter) Close() error {
	return e.file.Close()
}

func (e *Exporter) styleID(f cellFormat) (int, error) {
	if id, ok := e.styles[f]; ok {
		return id, nil
	}

	id, err := e.file.NewStyle(f.excelize())
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	e.styles[f] = id

	return id, nil
}

type worksheetWriter struct {
	exporter *Exporter
	sheet    *Sheet
	row      int
}

func (w *worksheetWriter) write() error {
	for _, f := range w.sheet.Filters {
		if err := w.writeRow([]any{f.Label, f.Value}, rowFilter); err != nil {
			return err
		}
	}

	if len(w.sheet.MergedHeaders) > 0 {
		if err := w.writeMergedHeaders(); err != nil {
			return err
		}
	}

	if len(w.sheet.Headers) > 0 {
		labels := make([]any, len(w.sheet.Headers))
		for i, h := range w.sheet.Headers {
			labels[i] = h.Label
		}

		if err := w.writeRow(labels, rowHeader); err != nil {
			return err
		}
	}

	for _, record := range w.sheet.Data {
		if err := w.writeRow(w.values(record), rowData); err != nil {
			return err
		}
	}

	if w.sheet.AddTotals {
		if err := w.writeRow(totals(w.sheet.Headers, w.sheet.Data), rowTotal); err != nil {
			return err
		}
	}

	return nil
}

func (w *worksheetWriter) values(record map[string]any) []any {
	values := make([]any, len(w.sheet.Headers))
	for i, h := range w.sheet.Headers {
		values[i] = record[h.FieldName]
	}

	return values
}

func (w *worksheetWriter) writeRow(values []any, kind rowKind) error {
	for i, v := range values {
		column := i + 1

		if err := w.applyStyle(column, kind); err != nil {
			return err
		}

		if v == nil {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(column, w.row)
		if err != nil {
			return err
		}

		if err := w.exporter.file.SetCellValue(w.sheet.Name, cell, v); err != nil {
			return fmt.Errorf("failed to set %s: %w", cell, err)
		}
	}

	w.row++

	return nil
}

func (w *worksheetWriter) writeMergedHeaders() error {
	for _, mh := range w.sheet.MergedHeaders {
		start, ok := w.sheet.columnIndex(mh.From)
		if !ok {
			return fmt.Errorf("merged header %q: unknown column %q", mh.Label, mh.From)
		}

		end, ok := w.sheet.columnIndex(mh.To)
		if !ok {
			return fmt.Errorf("merged header %q: unknown column %q", mh.Label, mh.To)
		}

		startCell, err := excelize.CoordinatesToCellName(start, w.row)
		if err != nil {
			return err
		}

		endCell, err := excelize.CoordinatesToCellName(end, w.row)
		if err != nil {
			return err
		}

		if err := w.exporter.file.SetCellValue(w.sheet.Name, startCell, mh.Label); err != nil {
			return fmt.Errorf("failed to set %s: %w", startCell, err)
		}

		if err := w.exporter.file.MergeCell(w.sheet.Name, startCell, endCell); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", startCell, endCell, err)
		}

		if err := w.applyStyle(start, rowHeader); err != nil {
			return err
		}
	}

	w.row++

	return nil
}

func (w *worksheetWriter) applyStyle(column int, kind rowKind) error {
	var col Column
	if column <= len(w.sheet.Headers) {
		col = w.sheet.Headers[column-1]
	}

	style := resolveStyle(col, kind)

	id, err := w.exporter.styleID(style.cellFormat)
	if err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(column, w.row)
	if err != nil {
		return err
	}

	f := w.exporter.file
	if err := f.SetCellStyle(w.sheet.Name, cell, cell, id); err != nil {
		return fmt.Errorf("failed to style %s: %w", cell, err)
	}

	name, err := excelize.ColumnNumberToName(column)
	if err != nil {
		return err
	}

	if err := f.SetColWidth(w.sheet.Name, name, name, style.width); err != nil {
		return fmt.Errorf("failed to set width of %s: %w", name, err)
	}

	if err := f.SetRowHeight(w.sheet.Name, w.row, style.height); err != nil {
		return fmt.Errorf("failed to set height of row %d: %w", w.row, err)
	}

	return nil
}

// totals sums numeric values per column. The first cell carries the label and
// columns without numbers stay blank.
func totals(headers []Column, data []map[string]any) []any {
	row := make([]any, len(headers))

	for i, h := range headers {
		if i == 0 {
			row[i] = totalLabel
			continue
		}

		var (
			sum     float64
			numeric bool
		)
		for _, record := range data {
			if v, ok := toFloat(record[h.FieldName]); ok {
				sum += v
				numeric = true
			}
		}

		row[i] = ""
		if numeric {
			row[i] = sum
		}
	}

	return row
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
