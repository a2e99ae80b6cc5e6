package domain

import "time"

// Column describes one report column.
type Column struct {
	FieldName string `json:"fieldname"`
	Label     string `json:"label"`
	FieldType string `json:"fieldtype"`
	Options   string `json:"options,omitempty"`
	Width     int    `json:"width"`
}

type AdvanceFilters struct {
	Company       string
	Customer      string
	Account       string
	ShowForPeriod bool
	FromDate      *time.Time
	ToDate        *time.Time
}

func (f *AdvanceFilters) Validate() error {
	if f.Company == "" {
		return ErrCompanyRequired
	}

	return nil
}

// AdvanceEntry is one row of the GST advance detail report.
type AdvanceEntry struct {
	PostingDate          time.Time `db:"posting_date"           json:"posting_date"`
	PaymentEntry         string    `db:"payment_entry"          json:"payment_entry"`
	Customer             string    `db:"customer"               json:"customer"`
	CustomerName         string    `db:"customer_name"          json:"customer_name"`
	PaidAmount           float64   `db:"paid_amount"            json:"paid_amount"`
	TotalAllocatedAmount float64   `db:"total_allocated_amount" json:"total_allocated_amount"`
	GSTPaid              float64   `db:"gst_paid"               json:"gst_paid"`
	GSTAllocated         float64   `db:"gst_allocated"          json:"gst_allocated"`
	AgainstVoucher       string    `db:"against_voucher"        json:"against_voucher"`
	PlaceOfSupply        string    `db:"place_of_supply"        json:"place_of_supply"`
}

// Values returns the entry keyed by column fieldname.
func (e *AdvanceEntry) Values() map[string]any {
	return map[string]any{
		"posting_date":           e.PostingDate.Format(time.DateOnly),
		"payment_entry":          e.PaymentEntry,
		"customer":               e.Customer,
		"customer_name":          e.CustomerName,
		"paid_amount":            e.PaidAmount,
		"total_allocated_amount": e.TotalAllocatedAmount,
		"gst_paid":               e.GSTPaid,
		"gst_allocated":          e.GSTAllocated,
		"against_voucher":        e.AgainstVoucher,
		"place_of_supply":        e.PlaceOfSupply,
	}
}
