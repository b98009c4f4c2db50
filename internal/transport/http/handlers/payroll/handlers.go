package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"laborpay/internal/domain/payroll"
	"laborpay/internal/transport/http/api"
	"laborpay/internal/transport/http/middleware"
	"laborpay/internal/transport/http/shared"
)

type Handler struct {
	service    *payroll.Service
	payslipDir string
}

func NewHandler(db *pgxpool.Pool, payslipDir string) *Handler {
	return &Handler{service: payroll.NewService(payroll.NewStore(db)), payslipDir: payslipDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/generate", h.handleGenerate)
		r.Get("/employees/{employeeID}", h.handleForEmployee)
		r.Get("/employees/{employeeID}/payslip", h.handlePayslipPDF)
	})
}

// generatePayload carries currency and day counts as strings; anything
// non-numeric becomes zero, matching the form's permissive behavior.
type generatePayload struct {
	EmployeeID        string `json:"employeeId"`
	PayPeriod         string `json:"payPeriod"`
	WorkingDays       string `json:"workingDays"`
	LOPDays           string `json:"lopDays"`
	BasicDA           string `json:"basicDA"`
	HRA               string `json:"hra"`
	Conveyance        string `json:"conveyance"`
	MedReimb          string `json:"medReimb"`
	SpecialAllowance  string `json:"specialAllowance"`
	ChildEdu          string `json:"childEdu"`
	ChildHostel       string `json:"childHostel"`
	Increment         string `json:"increment"`
	Arrears           string `json:"arrears"`
	OtherEarnings     string `json:"otherEarnings"`
	AllowanceIncrease string `json:"allowanceIncrease"`
	PF                string `json:"pf"`
	ESI               string `json:"esi"`
	LWF               string `json:"lwf"`
	Advance           string `json:"advance"`
	PaymentMethod     string `json:"paymentMethod"`
	Remarks           string `json:"remarks"`
}

func (p generatePayload) toRequest() payroll.GenerateRequest {
	return payroll.GenerateRequest{
		EmployeeID:  p.EmployeeID,
		PayPeriod:   p.PayPeriod,
		WorkingDays: shared.Amount(p.WorkingDays),
		LOPDays:     shared.Amount(p.LOPDays),
		Components: payroll.Components{
			BasicDA:           shared.Amount(p.BasicDA),
			HRA:               shared.Amount(p.HRA),
			Conveyance:        shared.Amount(p.Conveyance),
			MedReimb:          shared.Amount(p.MedReimb),
			SpecialAllowance:  shared.Amount(p.SpecialAllowance),
			ChildEdu:          shared.Amount(p.ChildEdu),
			ChildHostel:       shared.Amount(p.ChildHostel),
			Increment:         shared.Amount(p.Increment),
			Arrears:           shared.Amount(p.Arrears),
			OtherEarnings:     shared.Amount(p.OtherEarnings),
			AllowanceIncrease: shared.Amount(p.AllowanceIncrease),
			PF:                shared.Amount(p.PF),
			ESI:               shared.Amount(p.ESI),
			LWF:               shared.Amount(p.LWF),
			Advance:           shared.Amount(p.Advance),
		},
		PaymentMethod: p.PaymentMethod,
		Remarks:       p.Remarks,
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid payroll payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("employeeId", payload.EmployeeID, "employee id is required")
	validator.Required("payPeriod", payload.PayPeriod, "pay period is required")
	if payload.PayPeriod != "" {
		validator.Month("payPeriod", payload.PayPeriod)
	}
	if validator.Reject(w, requestID) {
		return
	}

	record, err := h.service.Generate(r.Context(), payload.toRequest())
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrInvalidWorkingDays):
			api.Fail(w, http.StatusBadRequest, "invalid_working_days", err.Error(), requestID)
		case errors.Is(err, payroll.ErrEmployeeNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", err.Error(), requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "payroll_generate_failed", "failed to generate payslip", requestID)
		}
		return
	}
	api.Created(w, record, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	records, err := h.service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_list_failed", "failed to list payroll records", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleForEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	record, err := h.service.ForEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, payroll.ErrPayrollNotFound) {
		api.Fail(w, http.StatusNotFound, "payroll_not_found", "no payroll record for employee", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_get_failed", "failed to load payroll record", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filePath, err := h.service.PayslipPDF(r.Context(), chi.URLParam(r, "employeeID"), h.payslipDir)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotFound) {
			api.Fail(w, http.StatusNotFound, "payroll_not_found", "no payroll record for employee", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", requestID)
		return
	}

	file, err := os.Open(filePath)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to open payslip", requestID)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payslip.pdf")
	http.ServeContent(w, r, "payslip.pdf", time.Now(), file)
}
