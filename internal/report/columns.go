package report

import "github.com/kurochkinivan/gst_compliance/internal/domain"

func Columns() []domain.Column {
	return []domain.Column{
		{FieldName: "posting_date", Label: "Posting Date", FieldType: "Date", Width: 120},
		{FieldName: "payment_entry", Label: "Payment Entry", FieldType: "Link", Options: "Payment Entry", Width: 180},
		{FieldName: "customer", Label: "Customer", FieldType: "Link", Options: "Customer", Width: 150},
		{FieldName: "customer_name", Label: "Customer Name", FieldType: "Data", Width: 150},
		{FieldName: "paid_amount", Label: "Paid Amount", FieldType: "Currency", Width: 120},
		{FieldName: "total_allocated_amount", Label: "Allocated Amount", FieldType: "Currency", Width: 120},
		{FieldName: "gst_paid", Label: "GST Paid", FieldType: "Currency", Width: 120},
		{FieldName: "gst_allocated", Label: "GST Allocated", FieldType: "Currency", Width: 120},
		{FieldName: "against_voucher", Label: "Against Voucher", FieldType: "Link", Options: "Sales Invoice", Width: 150},
		{FieldName: "place_of_supply", Label: "Place of Supply", FieldType: "Data", Width: 150},
	}
}
