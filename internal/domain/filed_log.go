package domain

import (
	"fmt"
	"slices"
	"time"
)

// FiledLogDoctype is the attachment owner type of filed log blobs.
const FiledLogDoctype = "GSTR-1 Filed Log"

// FileField names a filed log column that points to a compressed JSON attachment.
type FileField string

const (
	FieldComputedGSTR1          FileField = "computed_gstr1"
	FieldComputedGSTR1Summary   FileField = "computed_gstr1_summary"
	FieldReconciledGSTR1        FileField = "reconciled_gstr1"
	FieldReconciledGSTR1Summary FileField = "reconciled_gstr1_summary"
	FieldFiledGSTR1             FileField = "filed_gstr1"
	FieldFiledGSTR1Summary      FileField = "filed_gstr1_summary"
	FieldEInvoiceData           FileField = "e_invoice_data"
	FieldEInvoiceSummary        FileField = "e_invoice_summary"
)

var fileFields = []FileField{
	FieldComputedGSTR1,
	FieldComputedGSTR1Summary,
	FieldReconciledGSTR1,
	FieldReconciledGSTR1Summary,
	FieldFiledGSTR1,
	FieldFiledGSTR1Summary,
	FieldEInvoiceData,
	FieldEInvoiceSummary,
}

// FileFields returns every blob column in table order.
func FileFields() []FileField {
	return slices.Clone(fileFields)
}

func ParseFileField(s string) (FileField, error) {
	f := FileField(s)
	if !slices.Contains(fileFields, f) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileField, s)
	}

	return f, nil
}

type FiledLog struct {
	Name                   string     `db:"name"                     json:"name"`
	GSTIN                  string     `db:"gstin"                    json:"gstin"`
	ReturnPeriod           string     `db:"return_period"            json:"return_period"`
	FilingStatus           string     `db:"filing_status"            json:"filing_status"`
	FilingDate             *time.Time `db:"filing_date"              json:"filing_date,omitempty"`
	AcknowledgementNumber  string     `db:"acknowledgement_number"   json:"acknowledgement_number"`
	GenerationStatus       string     `db:"generation_status"        json:"generation_status"`
	IsLatestData           bool       `db:"is_latest_data"           json:"is_latest_data"`
	ComputedGSTR1          *string    `db:"computed_gstr1"           json:"computed_gstr1,omitempty"`
	ComputedGSTR1Summary   *string    `db:"computed_gstr1_summary"   json:"computed_gstr1_summary,omitempty"`
	ReconciledGSTR1        *string    `db:"reconciled_gstr1"         json:"reconciled_gstr1,omitempty"`
	ReconciledGSTR1Summary *string    `db:"reconciled_gstr1_summary" json:"reconciled_gstr1_summary,omitempty"`
	FiledGSTR1             *string    `db:"filed_gstr1"              json:"filed_gstr1,omitempty"`
	FiledGSTR1Summary      *string    `db:"filed_gstr1_summary"      json:"filed_gstr1_summary,omitempty"`
	EInvoiceData           *string    `db:"e_invoice_data"           json:"e_invoice_data,omitempty"`
	EInvoiceSummary        *string    `db:"e_invoice_summary"        json:"e_invoice_summary,omitempty"`
}

// FiledLogName is the record key: "<return period>-<gstin>".
func FiledLogName(returnPeriod, gstin string) string {
	return returnPeriod + "-" + gstin
}

func (l *FiledLog) Status() string {
	return l.GenerationStatus
}

func (l *FiledLog) IsFiled() bool {
	return l.FilingStatus == FilingStatusFiled
}

func (l *FiledLog) fieldRef(field FileField) **string {
	switch field {
	case FieldComputedGSTR1:
		return &l.ComputedGSTR1
	case FieldComputedGSTR1Summary:
		return &l.ComputedGSTR1Summary
	case FieldReconciledGSTR1:
		return &l.ReconciledGSTR1
	case FieldReconciledGSTR1Summary:
		return &l.ReconciledGSTR1Summary
	case FieldFiledGSTR1:
		return &l.FiledGSTR1
	case FieldFiledGSTR1Summary:
		return &l.FiledGSTR1Summary
	case FieldEInvoiceData:
		return &l.EInvoiceData
	case FieldEInvoiceSummary:
		return &l.EInvoiceSummary
	default:
		return nil
	}
}

// File returns the attachment URL stored in the field, or "" when unset.
func (l *FiledLog) File(field FileField) string {
	ref := l.fieldRef(field)
	if ref == nil || *ref == nil {
		return ""
	}

	return **ref
}

func (l *FiledLog) SetFile(field FileField, url string) {
	if ref := l.fieldRef(field); ref != nil {
		*ref = &url
	}
}

// ApplicableFileFields lists the blobs expected for this return under the given settings.
func (l *FiledLog) ApplicableFileFields(settings *Settings) []FileField {
	fields := []FileField{FieldComputedGSTR1, FieldComputedGSTR1Summary}

	if !settings.AnalyzeFiledData {
		return fields
	}

	fields = append(fields, FieldReconciledGSTR1, FieldReconciledGSTR1Summary)

	if l.IsFiled() {
		return append(fields, FieldFiledGSTR1, FieldFiledGSTR1Summary)
	}

	return append(fields, FieldEInvoiceData, FieldEInvoiceSummary)
}

func (l *FiledLog) HasAllFiles(settings *Settings) bool {
	if !l.IsLatestData {
		return false
	}

	for _, field := range l.ApplicableFileFields(settings) {
		if l.File(field) == "" {
			return false
		}
	}

	return true
}

// IsSEKNeeded reports whether data has to be pulled from the portal, which
// requires a session encryption key.
func (l *FiledLog) IsSEKNeeded(settings *Settings) bool {
	if !settings.AnalyzeFiledData {
		return false
	}

	if l.File(FieldEInvoiceData) == "" || !l.IsFiled() {
		return true
	}

	return l.File(FieldFiledGSTR1) == ""
}

// IsSEKValid reports whether the Returns session for the GSTIN is still usable.
func (l *FiledLog) IsSEKValid(settings *Settings, now time.Time) (bool, error) {
	credential, ok := settings.Credential(CredentialServiceReturns, l.GSTIN)
	if !ok {
		return false, fmt.Errorf("%w: no credential found for the GSTIN %s in the GST settings", ErrCredentialNotFound, l.GSTIN)
	}

	if credential.SessionExpiry == nil {
		return false, nil
	}

	return credential.SessionExpiry.After(now.Add(-sessionGrace)), nil
}
