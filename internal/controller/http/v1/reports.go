package v1

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/report"
)

const (
	formatJSON = "json"
	formatXLSX = "xlsx"
	formatPDF  = "pdf"

	advanceFileName = "gst_advance_detail"
)

type ReportsHandler struct {
	log       *slog.Logger
	advance   AdvanceReporter
	generator AdvancePDFGenerator
}

func NewReportsHandler(log *slog.Logger, advance AdvanceReporter, generator AdvancePDFGenerator) *ReportsHandler {
	return &ReportsHandler{
		log:       log,
		advance:   advance,
		generator: generator,
	}
}

type AdvanceReportResponse struct {
	Columns []domain.Column        `json:"columns"`
	Data    []*domain.AdvanceEntry `json:"data"`
}

func (h *ReportsHandler) GetAdvanceDetail(w http.ResponseWriter, r *http.Request) {
	filters, err := parseAdvanceFilters(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}

	if format != formatJSON && format != formatXLSX && format != formatPDF {
		http.Error(w, "invalid format, must be one of json, xlsx, pdf", http.StatusBadRequest)
		return
	}

	columns, entries, err := h.advance.Execute(r.Context(), filters)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	switch format {
	case formatXLSX:
		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, filters, columns, entries); err != nil {
			writeError(w, r, h.log, err)
			return
		}

		writeFile(w, contentTypeXLSX, advanceFileName+".xlsx", buf.Bytes())

	case formatPDF:
		content, err := h.generator.AdvanceReport(filters, columns, entries)
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}

		writeFile(w, contentTypePDF, advanceFileName+".pdf", content)

	default:
		writeJSON(w, http.StatusOK, AdvanceReportResponse{Columns: columns, Data: entries})
	}
}

func parseAdvanceFilters(q url.Values) (*domain.AdvanceFilters, error) {
	filters := &domain.AdvanceFilters{
		Company:  q.Get("company"),
		Customer: q.Get("customer"),
		Account:  q.Get("account"),
	}

	if s := q.Get("show_for_period"); s != "" {
		show, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid show_for_period %q", s)
		}
		filters.ShowForPeriod = show
	}

	var err error
	if filters.FromDate, err = parseDate(q, "from_date"); err != nil {
		return nil, err
	}

	if filters.ToDate, err = parseDate(q, "to_date"); err != nil {
		return nil, err
	}

	return filters, nil
}

func parseDate(q url.Values, key string) (*time.Time, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", key, s)
	}

	return &t, nil
}
