package laborhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"laborpay/internal/domain/labor"
	"laborpay/internal/transport/http/api"
	"laborpay/internal/transport/http/middleware"
	"laborpay/internal/transport/http/shared"
)

type Handler struct {
	store *labor.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{store: labor.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/labors", func(r chi.Router) {
		r.Get("/", h.handleListLabors)
		r.Post("/", h.handleCreateLabor)
		r.Get("/{laborID}", h.handleGetLabor)
		r.Put("/{laborID}", h.handleUpdateLabor)
		r.Delete("/{laborID}", h.handleDeleteLabor)
	})
	r.Route("/sites", func(r chi.Router) {
		r.Get("/", h.handleListSites)
		r.Post("/", h.handleCreateSite)
	})
	r.Route("/engineers", func(r chi.Router) {
		r.Get("/", h.handleListEngineers)
		r.Post("/", h.handleCreateEngineer)
	})
}

type laborPayload struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	SiteID     string `json:"siteId"`
	EngineerID string `json:"engineerId"`
	DailyRate  string `json:"dailyRate"`
	Status     string `json:"status"`
}

func (p laborPayload) toLabor() labor.Labor {
	status := p.Status
	if status == "" {
		status = labor.StatusActive
	}
	return labor.Labor{
		Name:       p.Name,
		Phone:      p.Phone,
		SiteID:     p.SiteID,
		EngineerID: p.EngineerID,
		DailyRate:  shared.Amount(p.DailyRate),
		Status:     status,
	}
}

func (h *Handler) handleListLabors(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	labors, err := h.store.ListLabors(r.Context(), r.URL.Query().Get("siteId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "labor_list_failed", "failed to list labors", requestID)
		return
	}
	api.Success(w, labors, requestID)
}

func (h *Handler) handleCreateLabor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload laborPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid labor payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.Enum("status", payload.Status,
		[]string{labor.StatusActive, labor.StatusInactive}, "must be Active or Inactive")
	if validator.Reject(w, requestID) {
		return
	}

	id, err := h.store.CreateLabor(r.Context(), payload.toLabor())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "labor_create_failed", "failed to create labor", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleGetLabor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	found, err := h.store.GetLabor(r.Context(), chi.URLParam(r, "laborID"))
	if errors.Is(err, labor.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "labor_not_found", "labor not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "labor_get_failed", "failed to load labor", requestID)
		return
	}
	api.Success(w, found, requestID)
}

func (h *Handler) handleUpdateLabor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload laborPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid labor payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.Enum("status", payload.Status,
		[]string{labor.StatusActive, labor.StatusInactive}, "must be Active or Inactive")
	if validator.Reject(w, requestID) {
		return
	}

	updated := payload.toLabor()
	updated.ID = chi.URLParam(r, "laborID")

	if err := h.store.UpdateLabor(r.Context(), updated); err != nil {
		if errors.Is(err, labor.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "labor_not_found", "labor not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "labor_update_failed", "failed to update labor", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDeleteLabor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.store.DeleteLabor(r.Context(), chi.URLParam(r, "laborID")); err != nil {
		if errors.Is(err, labor.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "labor_not_found", "labor not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "labor_delete_failed", "failed to delete labor", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) handleListSites(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sites, err := h.store.ListSites(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "site_list_failed", "failed to list sites", requestID)
		return
	}
	api.Success(w, sites, requestID)
}

func (h *Handler) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var site labor.Site
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid site payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", site.Name, "name is required")
	if validator.Reject(w, requestID) {
		return
	}

	id, err := h.store.CreateSite(r.Context(), site)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "site_create_failed", "failed to create site", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleListEngineers(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	engineers, err := h.store.ListEngineers(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "engineer_list_failed", "failed to list engineers", requestID)
		return
	}
	api.Success(w, engineers, requestID)
}

func (h *Handler) handleCreateEngineer(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var engineer labor.Engineer
	if err := json.NewDecoder(r.Body).Decode(&engineer); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid engineer payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", engineer.Name, "name is required")
	if validator.Reject(w, requestID) {
		return
	}

	id, err := h.store.CreateEngineer(r.Context(), engineer)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "engineer_create_failed", "failed to create engineer", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}
