package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

type ReturnsHandler struct {
	log        *slog.Logger
	reconciler ReturnsReconciler
}

func NewReturnsHandler(log *slog.Logger, reconciler ReturnsReconciler) *ReturnsHandler {
	return &ReturnsHandler{
		log:        log,
		reconciler: reconciler,
	}
}

// PostReturns reconciles stored filed logs with a returns list in the portal's
// EFiledlist shape.
func (h *ReturnsHandler) PostReturns(w http.ResponseWriter, r *http.Request) {
	gstin := chi.URLParam(r, "gstin")

	var info domain.ReturnsInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}

	for i := range info.EFiledList {
		if err := info.EFiledList[i].Validate(); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}

	result, err := h.reconciler.Process(r.Context(), gstin, &info)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
