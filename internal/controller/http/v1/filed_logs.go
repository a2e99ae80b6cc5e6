package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

type FiledLogsHandler struct {
	log        *slog.Logger
	service    FiledLogService
	repository FiledLogsRepository
}

func NewFiledLogsHandler(log *slog.Logger, service FiledLogService, repository FiledLogsRepository) *FiledLogsHandler {
	return &FiledLogsHandler{
		log:        log,
		service:    service,
		repository: repository,
	}
}

type GetFiledLogsResponse struct {
	FiledLogs  []*domain.FiledLog `json:"filed_logs"`
	Pagination Pagination         `json:"pagination"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *FiledLogsHandler) GetFiledLogs(w http.ResponseWriter, r *http.Request) {
	gstin := chi.URLParam(r, "gstin")

	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	logs, total, err := h.repository.FiledLogsPage(r.Context(), gstin, limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, GetFiledLogsResponse{
		FiledLogs:  logs,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *FiledLogsHandler) GetFiledLog(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context(), filedLogName(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *FiledLogsHandler) GetData(w http.ResponseWriter, r *http.Request) {
	log, err := h.service.FiledLog(r.Context(), filedLogName(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	data, err := h.service.LoadData(r.Context(), log)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

func (h *FiledLogsHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseFileField(chi.URLParam(r, "field"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	payload, ok, err := h.service.JSONFor(r.Context(), filedLogName(r), field)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if !ok {
		http.Error(w, "no file attached to "+string(field), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

func (h *FiledLogsHandler) PutFile(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseFileField(chi.URLParam(r, "field"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	overwrite := false
	if o := r.URL.Query().Get("overwrite"); o != "" {
		overwrite, err = strconv.ParseBool(o)
		if err != nil {
			http.Error(w, "invalid overwrite", http.StatusBadRequest)
			return
		}
	}

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if data == nil {
		http.Error(w, "invalid body: a JSON object is required", http.StatusBadRequest)
		return
	}

	log, err := h.service.FiledLog(r.Context(), filedLogName(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.service.UpdateJSONFor(r.Context(), log, field, data, overwrite); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, log)
}

func (h *FiledLogsHandler) PutStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), filedLogName(r), req.Status); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FiledLogsHandler) GetSEKValidity(w http.ResponseWriter, r *http.Request) {
	log, err := h.service.FiledLog(r.Context(), filedLogName(r))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	valid, err := h.service.IsSEKValid(r.Context(), log)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

func filedLogName(r *http.Request) string {
	return domain.FiledLogName(chi.URLParam(r, "period"), chi.URLParam(r, "gstin"))
}
