package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"laborpay/internal/domain/employee"
	"laborpay/internal/transport/http/api"
	"laborpay/internal/transport/http/middleware"
	"laborpay/internal/transport/http/shared"
)

type Handler struct {
	store *employee.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{store: employee.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

type employeePayload struct {
	Name             string `json:"name"`
	Department       string `json:"department"`
	Designation      string `json:"designation"`
	PANNo            string `json:"panNo"`
	BankName         string `json:"bankName"`
	AccountNo        string `json:"accountNo"`
	BasicSalary      string `json:"basicSalary"`
	HRA              string `json:"hra"`
	Conveyance       string `json:"conveyance"`
	MedReimb         string `json:"medReimb"`
	SpecialAllowance string `json:"specialAllowance"`
	ChildEdu         string `json:"childEdu"`
	ChildHostel      string `json:"childHostel"`
	PF               string `json:"pf"`
	ESI              string `json:"esi"`
	LWF              string `json:"lwf"`
}

func (p employeePayload) toEmployee() employee.Employee {
	return employee.Employee{
		Name:             p.Name,
		Department:       p.Department,
		Designation:      p.Designation,
		PANNo:            p.PANNo,
		BankName:         p.BankName,
		AccountNo:        p.AccountNo,
		BasicSalary:      shared.Amount(p.BasicSalary),
		HRA:              shared.Amount(p.HRA),
		Conveyance:       shared.Amount(p.Conveyance),
		MedReimb:         shared.Amount(p.MedReimb),
		SpecialAllowance: shared.Amount(p.SpecialAllowance),
		ChildEdu:         shared.Amount(p.ChildEdu),
		ChildHostel:      shared.Amount(p.ChildHostel),
		PF:               shared.Amount(p.PF),
		ESI:              shared.Amount(p.ESI),
		LWF:              shared.Amount(p.LWF),
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employees, err := h.store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid employee payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	if validator.Reject(w, requestID) {
		return
	}

	id, err := h.store.Create(r.Context(), payload.toEmployee())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	found, err := h.store.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", requestID)
		return
	}
	api.Success(w, found, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid employee payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	if validator.Reject(w, requestID) {
		return
	}

	updated := payload.toEmployee()
	updated.ID = chi.URLParam(r, "employeeID")

	if err := h.store.Update(r.Context(), updated); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.store.Delete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}
