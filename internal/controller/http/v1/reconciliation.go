package v1

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/reconciliation"
)

const reconciliationFileName = "purchase_reconciliation.xlsx"

type ReconciliationHandler struct {
	log *slog.Logger
	now func() time.Time
}

func NewReconciliationHandler(log *slog.Logger) *ReconciliationHandler {
	return &ReconciliationHandler{
		log: log,
		now: time.Now,
	}
}

type ReconciliationRequest struct {
	Purchases      []*reconciliation.Invoice `json:"purchases"`
	InwardSupplies []*reconciliation.Invoice `json:"inward_supplies"`
}

type ReconciliationResponse struct {
	ReturnPeriods []string              `json:"return_periods,omitempty"`
	Rows          []*reconciliation.Row `json:"rows"`
}

// PostReconciliation matches purchase invoices against inward supplies. The
// optional period (e.g. "This Quarter") keeps only invoices billed within it.
func (h *ReconciliationHandler) PostReconciliation(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}

	if format != formatJSON && format != formatXLSX {
		http.Error(w, "invalid format, must be one of json, xlsx", http.StatusBadRequest)
		return
	}

	var req ReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}

	req.Purchases = slices.DeleteFunc(req.Purchases, isNilInvoice)
	req.InwardSupplies = slices.DeleteFunc(req.InwardSupplies, isNilInvoice)

	var resp ReconciliationResponse

	if period := r.URL.Query().Get("period"); period != "" {
		from, to, err := reconciliation.DateRange(period, h.now())
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}

		req.Purchases = billedWithin(req.Purchases, from, to)
		req.InwardSupplies = billedWithin(req.InwardSupplies, from, to)
		resp.ReturnPeriods = reconciliation.Periods(from, to)
	}

	resp.Rows = reconciliation.Reconcile(req.Purchases, req.InwardSupplies)

	h.log.DebugContext(r.Context(), "purchase reconciliation done",
		slog.Int("purchases", len(req.Purchases)),
		slog.Int("inward_supplies", len(req.InwardSupplies)),
		slog.Int("rows", len(resp.Rows)),
	)

	if format == formatXLSX {
		var buf bytes.Buffer
		if err := reconciliation.WriteXLSX(&buf, resp.Rows); err != nil {
			writeError(w, r, h.log, err)
			return
		}

		writeFile(w, contentTypeXLSX, reconciliationFileName, buf.Bytes())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func billedWithin(invoices []*reconciliation.Invoice, from, to time.Time) []*reconciliation.Invoice {
	kept := make([]*reconciliation.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.BillDate.IsZero() {
			continue
		}

		d := inv.BillDate.Time
		if !d.Before(from) && !d.After(to) {
			kept = append(kept, inv)
		}
	}

	return kept
}

func isNilInvoice(inv *reconciliation.Invoice) bool {
	return inv == nil
}
