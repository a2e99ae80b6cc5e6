package reconciliation

import (
	"errors"
	"io"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/spreadsheet"
)

const (
	sheetName = "Purchase Reconciliation"

	purchaseColor     = "D9EAD3"
	inwardSupplyColor = "CFE2F3"
	amountFormat      = "0.00"
)

var (
	purchaseColumns = []spreadsheet.Column{
		{FieldName: "name", Label: "Purchase Invoice", Width: 22},
		{FieldName: "supplier_name", Label: "Supplier Name", Width: 25},
		{FieldName: "supplier_gstin", Label: "Supplier GSTIN", Width: 18},
		{FieldName: "bill_no", Label: "Bill No"},
		{FieldName: "bill_date", Label: "Bill Date", Width: 12},
		{FieldName: "place_of_supply", Label: "Place of Supply"},
		{FieldName: "is_reverse_charge", Label: "Reverse Charge", Width: 10},
		{FieldName: "cgst", Label: "CGST", Format: amountFormat, Width: 12},
		{FieldName: "sgst", Label: "SGST", Format: amountFormat, Width: 12},
		{FieldName: "igst", Label: "IGST", Format: amountFormat, Width: 12},
		{FieldName: "cess", Label: "CESS", Format: amountFormat, Width: 12},
		{FieldName: "taxable_value", Label: "Taxable Amount", Format: amountFormat, Width: 14},
	}

	inwardSupplyColumns = []spreadsheet.Column{
		{FieldName: "isup_name", Label: "Inward Supply", Width: 22},
		{FieldName: "isup_bill_no", Label: "GSTR Bill No"},
		{FieldName: "isup_bill_date", Label: "GSTR Bill Date", Width: 12},
		{FieldName: "isup_cgst", Label: "GSTR CGST", Format: amountFormat, Width: 12},
		{FieldName: "isup_sgst", Label: "GSTR SGST", Format: amountFormat, Width: 12},
		{FieldName: "isup_igst", Label: "GSTR IGST", Format: amountFormat, Width: 12},
		{FieldName: "isup_cess", Label: "GSTR CESS", Format: amountFormat, Width: 12},
		{FieldName: "isup_taxable_value", Label: "GSTR Taxable Amount", Format: amountFormat, Width: 14},
		{FieldName: "isup_classification", Label: "Category", Width: 10},
	}

	statusColumns = []spreadsheet.Column{
		{FieldName: "match_status", Label: "Match Status"},
		{FieldName: "tax_diff", Label: "Tax Difference", Format: amountFormat, Width: 12},
		{FieldName: "taxable_value_diff", Label: "Taxable Value Difference", Format: amountFormat, Width: 14},
		{FieldName: "differences", Label: "Differences", Width: 30, WrapText: true},
	}
)

// WriteXLSX renders rows with the purchase and inward supply columns grouped
// under merged headers.
func WriteXLSX(w io.Writer, rows []*Row) (err error) {
	exporter := spreadsheet.NewExporter()
	defer func() { err = errors.Join(err, exporter.Close()) }()

	if err := exporter.AddSheet(Sheet(rows)); err != nil {
		return err
	}

	return exporter.Write(w)
}

func Sheet(rows []*Row) *spreadsheet.Sheet {
	headers := make([]spreadsheet.Column, 0, len(purchaseColumns)+len(inwardSupplyColumns)+len(statusColumns))
	headers = append(headers, colored(purchaseColumns, purchaseColor)...)
	headers = append(headers, colored(inwardSupplyColumns, inwardSupplyColor)...)
	headers = append(headers, statusColumns...)

	data := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, r.Values())
	}

	return &spreadsheet.Sheet{
		Name: sheetName,
		MergedHeaders: []spreadsheet.MergedHeader{
			{Label: "Purchase Invoice", From: "name", To: "taxable_value"},
			{Label: "Inward Supply", From: "isup_name", To: "isup_classification"},
		},
		Headers: headers,
		Data:    data,
	}
}

func colored(columns []spreadsheet.Column, color string) []spreadsheet.Column {
	out := make([]spreadsheet.Column, len(columns))
	for i, c := range columns {
		c.BgColor = color
		out[i] = c
	}

	return out
}

// Values returns the row keyed by export column.
func (r *Row) Values() map[string]any {
	values := map[string]any{
		"match_status":       r.MatchStatus,
		"tax_diff":           r.TaxDiff,
		"taxable_value_diff": r.TaxableValueDiff,
		"differences":        r.DifferenceList(),
	}

	if p := r.Purchase; p != nil {
		values["name"] = p.Name
		values["supplier_name"] = p.SupplierName
		values["supplier_gstin"] = p.SupplierGSTIN
		values["bill_no"] = p.BillNo
		values["bill_date"] = formatDate(p.BillDate)
		values["place_of_supply"] = p.PlaceOfSupply
		values["is_reverse_charge"] = yesNo(p.IsReverseCharge)
		values["cgst"] = p.CGST
		values["sgst"] = p.SGST
		values["igst"] = p.IGST
		values["cess"] = p.cess()
		values["taxable_value"] = p.TaxableValue
	}

	if s := r.InwardSupply; s != nil {
		values["isup_name"] = s.Name
		values["isup_bill_no"] = s.BillNo
		values["isup_bill_date"] = formatDate(s.BillDate)
		values["isup_cgst"] = s.CGST
		values["isup_sgst"] = s.SGST
		values["isup_igst"] = s.IGST
		values["isup_cess"] = s.cess()
		values["isup_taxable_value"] = s.TaxableValue
		values["isup_classification"] = s.Classification

		// documents missing in purchases take the supplier from the inward supply
		if r.Purchase == nil {
			values["supplier_name"] = s.SupplierName
			values["supplier_gstin"] = s.SupplierGSTIN
			values["bill_no"] = s.BillNo
			values["bill_date"] = formatDate(s.BillDate)
			values["place_of_supply"] = s.PlaceOfSupply
			values["is_reverse_charge"] = yesNo(s.IsReverseCharge)
		}
	}

	return values
}

func formatDate(d Date) string {
	if d.IsZero() {
		return ""
	}

	return d.Format(time.DateOnly)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
