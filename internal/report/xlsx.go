package report

import (
	"errors"
	"io"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/spreadsheet"
)

const (
	sheetName      = "GST Advance Detail"
	currencyFormat = "#,##0.00"

	// report widths are pixels, sheet widths are characters
	pixelsPerChar = 7
)

// WriteXLSX renders the report as a single sheet with the applied filters on
// top and a totals row at the bottom.
func WriteXLSX(w io.Writer, filters *domain.AdvanceFilters, columns []domain.Column, entries []*domain.AdvanceEntry) (err error) {
	exporter := spreadsheet.NewExporter()
	defer func() { err = errors.Join(err, exporter.Close()) }()

	if err := exporter.AddSheet(Sheet(filters, columns, entries)); err != nil {
		return err
	}

	return exporter.Write(w)
}

func Sheet(filters *domain.AdvanceFilters, columns []domain.Column, entries []*domain.AdvanceEntry) *spreadsheet.Sheet {
	headers := make([]spreadsheet.Column, 0, len(columns))
	for _, c := range columns {
		h := spreadsheet.Column{
			FieldName: c.FieldName,
			Label:     c.Label,
			Width:     float64(c.Width) / pixelsPerChar,
		}

		if c.FieldType == "Currency" {
			h.Format = currencyFormat
			h.AlignData = "right"
		}

		headers = append(headers, h)
	}

	data := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		data = append(data, e.Values())
	}

	return &spreadsheet.Sheet{
		Name:      sheetName,
		Filters:   sheetFilters(filters),
		Headers:   headers,
		Data:      data,
		AddTotals: true,
	}
}

func sheetFilters(f *domain.AdvanceFilters) []spreadsheet.Filter {
	filters := []spreadsheet.Filter{{Label: "Company", Value: f.Company}}

	if f.Customer != "" {
		filters = append(filters, spreadsheet.Filter{Label: "Customer", Value: f.Customer})
	}

	if f.Account != "" {
		filters = append(filters, spreadsheet.Filter{Label: "Account", Value: f.Account})
	}

	if f.ShowForPeriod && f.FromDate != nil {
		filters = append(filters, spreadsheet.Filter{Label: "From Date", Value: f.FromDate.Format(time.DateOnly)})
	}

	if f.ToDate != nil {
		filters = append(filters, spreadsheet.Filter{Label: "To Date", Value: f.ToDate.Format(time.DateOnly)})
	}

	return filters
}
