package report_generator

import (
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

// grid sizes of the advance detail columns, summing to 12
var advanceSizes = map[string]int{
	"posting_date":           1,
	"payment_entry":          2,
	"customer":               1,
	"customer_name":          1,
	"paid_amount":            1,
	"total_allocated_amount": 1,
	"gst_paid":               1,
	"gst_allocated":          1,
	"against_voucher":        2,
	"place_of_supply":        1,
}

// AdvanceReport renders the GST advance detail report with a totals line.
func (g *Generator) AdvanceReport(
	filters *domain.AdvanceFilters,
	columns []domain.Column,
	entries []*domain.AdvanceEntry,
) ([]byte, error) {
	m := newDocument(orientation.Horizontal)
	g.addTitle(m, "GST Advance Detail", advanceSubtitle(filters))

	cols := make([]column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, column{
			label:   c.Label,
			size:    advanceSizes[c.FieldName],
			numeric: c.FieldType == "Currency",
		})
	}

	var totals [4]float64
	rows := make([][]string, 0, len(entries)+1)
	for _, e := range entries {
		totals[0] += e.PaidAmount
		totals[1] += e.TotalAllocatedAmount
		totals[2] += e.GSTPaid
		totals[3] += e.GSTAllocated

		rows = append(rows, []string{
			e.PostingDate.Format(time.DateOnly),
			e.PaymentEntry,
			e.Customer,
			e.CustomerName,
			amount(e.PaidAmount),
			amount(e.TotalAllocatedAmount),
			amount(e.GSTPaid),
			amount(e.GSTAllocated),
			e.AgainstVoucher,
			e.PlaceOfSupply,
		})
	}

	rows = append(rows, []string{
		"Totals", "", "", "",
		amount(totals[0]),
		amount(totals[1]),
		amount(totals[2]),
		amount(totals[3]),
		"", "",
	})

	addTable(m, cols, rows)

	return generate(m)
}

func advanceSubtitle(f *domain.AdvanceFilters) string {
	parts := []string{f.Company}

	if f.Customer != "" {
		parts = append(parts, "customer "+f.Customer)
	}

	if f.ShowForPeriod && f.FromDate != nil {
		parts = append(parts, "from "+f.FromDate.Format(time.DateOnly))
	}

	if f.ToDate != nil {
		parts = append(parts, "to "+f.ToDate.Format(time.DateOnly))
	}

	return strings.Join(parts, ", ")
}
