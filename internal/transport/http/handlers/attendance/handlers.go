package attendancehandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"laborpay/internal/domain/attendance"
	"laborpay/internal/transport/http/api"
	"laborpay/internal/transport/http/middleware"
	"laborpay/internal/transport/http/shared"
)

type Handler struct {
	service *attendance.Service
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{service: attendance.NewService(attendance.NewStore(db))}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSaveDay)
		r.Post("/batch", h.handleSaveBatch)
		r.Post("/mark-paid", h.handleMarkPaid)
		r.Post("/delete", h.handleDelete)
		r.Get("/summary/labor", h.handleSummaryByLabor)
		r.Get("/summary/site", h.handleSummaryBySite)
		r.Get("/summary/engineer", h.handleSummaryByEngineer)
	})
}

func (h *Handler) handleSaveDay(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var entry attendance.DayEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid attendance payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("laborId", entry.LaborID, "labor id is required")
	validator.Required("siteId", entry.SiteID, "site id is required")
	validator.Required("workDate", entry.WorkDate, "work date is required")
	validator.Enum("dayStatus", entry.DayStatus,
		[]string{attendance.DayPresent, attendance.DayHalf, attendance.DayAbsent},
		"must be Present, Half Day or Absent")
	if validator.Reject(w, requestID) {
		return
	}

	record, err := h.service.SaveDay(r.Context(), entry)
	if err != nil {
		failSave(w, err, requestID)
		return
	}
	api.Created(w, record, requestID)
}

type batchPayload struct {
	Entries []attendance.DayEntry `json:"entries"`
}

func (h *Handler) handleSaveBatch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload batchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid batch payload", requestID)
		return
	}

	result, err := h.service.SaveBatch(r.Context(), payload.Entries)
	if errors.Is(err, attendance.ErrPartialSave) {
		api.WriteJSON(w, http.StatusMultiStatus, api.Envelope{
			Success:   false,
			Data:      result,
			Error:     &api.Error{Code: "partial_save", Message: err.Error()},
			RequestID: requestID,
		})
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "batch_save_failed", "failed to save attendance batch", requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filter, ok := parseFilter(w, r, requestID)
	if !ok {
		return
	}

	records, err := h.service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", requestID)
		return
	}
	api.Success(w, records, requestID)
}

type idsPayload struct {
	IDs []string `json:"ids"`
}

func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload idsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid mark-paid payload", requestID)
		return
	}
	if len(payload.IDs) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "ids are required", requestID)
		return
	}

	if err := h.service.MarkPaid(r.Context(), payload.IDs); err != nil {
		if errors.Is(err, attendance.ErrMarkPaidMismatch) {
			api.Fail(w, http.StatusConflict, "mark_paid_incomplete", err.Error(), requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "mark_paid_failed", "failed to mark records paid", requestID)
		return
	}
	api.Success(w, map[string]any{"updated": len(payload.IDs)}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload idsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid delete payload", requestID)
		return
	}

	deleted, err := h.service.Delete(r.Context(), payload.IDs)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_delete_failed", "failed to delete records", requestID)
		return
	}
	api.Success(w, map[string]any{"deleted": deleted}, requestID)
}

func (h *Handler) handleSummaryByLabor(w http.ResponseWriter, r *http.Request) {
	h.handleSummary(w, r, h.service.WeeklyByLabor)
}

func (h *Handler) handleSummaryBySite(w http.ResponseWriter, r *http.Request) {
	h.handleSummary(w, r, h.service.WeeklyBySite)
}

func (h *Handler) handleSummaryByEngineer(w http.ResponseWriter, r *http.Request) {
	h.handleSummary(w, r, h.service.WeeklyByEngineer)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request,
	summarize func(ctx context.Context, filter attendance.Filter) ([]attendance.WeeklyGroup, error)) {
	requestID := middleware.GetRequestID(r.Context())

	filter, ok := parseFilter(w, r, requestID)
	if !ok {
		return
	}

	groups, err := summarize(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_summary_failed", "failed to build summary", requestID)
		return
	}
	api.Success(w, groups, requestID)
}

func parseFilter(w http.ResponseWriter, r *http.Request, requestID string) (attendance.Filter, bool) {
	query := r.URL.Query()
	filter := attendance.Filter{
		Week:    query.Get("week"),
		LaborID: query.Get("laborId"),
		SiteID:  query.Get("siteId"),
		Status:  query.Get("status"),
	}

	validator := shared.NewValidator()
	if raw := query.Get("from"); raw != "" {
		if from, ok := validator.Date("from", raw); ok {
			filter.From = from
		}
	}
	if raw := query.Get("to"); raw != "" {
		if to, ok := validator.Date("to", raw); ok {
			filter.To = to
		}
	}
	if validator.Reject(w, requestID) {
		return attendance.Filter{}, false
	}
	return filter, true
}

func failSave(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, attendance.ErrLaborNotFound):
		api.Fail(w, http.StatusNotFound, "labor_not_found", err.Error(), requestID)
	case errors.Is(err, attendance.ErrInvalidWorkDate):
		api.Fail(w, http.StatusBadRequest, "invalid_work_date", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "attendance_save_failed", "failed to save attendance", requestID)
	}
}
