package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/reconciliation"
)

const (
	contentTypeJSON = "application/json"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	w.Write(data)
}

func writeFile(w http.ResponseWriter, contentType, fileName string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Write(content)
}

// writeError maps domain errors to status codes. Unknown errors are logged and
// reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCredentialNotFound):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidFileField),
		errors.Is(err, domain.ErrCompanyRequired),
		errors.Is(err, domain.ErrInvalidReturn),
		errors.Is(err, reconciliation.ErrUnknownPeriod):
		status = http.StatusBadRequest
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()))
	}

	http.Error(w, err.Error(), status)
}
