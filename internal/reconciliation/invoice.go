package reconciliation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}

	return json.Marshal(d.Format(time.DateOnly))
}

// Invoice is either a booked purchase invoice or an inward supply reported by
// the supplier in GSTR-2A/2B.
type Invoice struct {
	Name            string  `json:"name"`
	SupplierGSTIN   string  `json:"supplier_gstin"`
	SupplierName    string  `json:"supplier_name"`
	BillNo          string  `json:"bill_no"`
	BillDate        Date    `json:"bill_date"`
	PlaceOfSupply   string  `json:"place_of_supply"`
	IsReverseCharge bool    `json:"is_reverse_charge"`
	CGST            float64 `json:"cgst"`
	SGST            float64 `json:"sgst"`
	IGST            float64 `json:"igst"`
	Cess            float64 `json:"cess"`
	CessNonAdvol    float64 `json:"cess_non_advol"`
	TaxableValue    float64 `json:"taxable_value"`
	Classification  string  `json:"classification,omitempty"`

	fy     string
	billNo string
}

// prepare fills the financial year and the cleaned bill number used for matching.
func (inv *Invoice) prepare() {
	inv.fy = FinancialYear(inv.BillDate.Time)
	inv.billNo = CleanBillNo(inv.BillNo, inv.fy)
}

func (inv *Invoice) totalTax() float64 {
	return inv.CGST + inv.SGST + inv.IGST + inv.Cess + inv.CessNonAdvol
}

// cess includes the non ad valorem part.
func (inv *Invoice) cess() float64 {
	return inv.Cess + inv.CessNonAdvol
}

// FinancialYear returns the Indian financial year of t, e.g. "2023-2024" for
// any date from April 2023 to March 2024.
func FinancialYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	year := t.Year()
	if t.Month() < time.April {
		return fmt.Sprintf("%d-%d", year-1, year)
	}

	return fmt.Sprintf("%d-%d", year, year+1)
}

// CleanBillNo strips the financial year, separators, repeated spaces and
// leading zeros from a bill number.
func CleanBillNo(billNo, fy string) string {
	cleaned := billNo

	// longer variants go first so "2023-2024" is not cut down to "2023-20" + "24"
	if start, end, ok := strings.Cut(fy, "-"); ok && len(start) == 4 && len(end) == 4 {
		for _, variant := range []string{
			start + "-" + end,
			start + "/" + end,
			start + "-" + end[2:],
			start + "/" + end[2:],
			start[2:] + "-" + end[2:],
			start[2:] + "/" + end[2:],
		} {
			cleaned = strings.ReplaceAll(cleaned, variant, " ")
		}
	}

	cleaned = strings.NewReplacer("/", " ", "-", " ").Replace(cleaned)

	return strings.TrimLeft(strings.Join(strings.Fields(cleaned), " "), "0")
}
