package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/payroll"
	"github.com/sistema-rh/planilla-backend-go/internal/handler/http/middleware"
	"github.com/sistema-rh/planilla-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	GetRecords(w http.ResponseWriter, r *http.Request)
	Sheet(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Calculate implements PayrollHandler. Recalculating the same period
// replaces the stored draft records, so the endpoint is safe to retry.
func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyID(r)
	if !ok {
		response.Unauthorized(w, "Missing company in token")
		return
	}

	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRecords implements PayrollHandler.
func (h *payrollHandlerImpl) GetRecords(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyID(r)
	if !ok {
		response.Unauthorized(w, "Missing company in token")
		return
	}

	req, err := requestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.payrollService.GetRecords(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Sheet implements PayrollHandler. It streams the payroll table as a
// landscape PDF for printing and bank submission.
func (h *payrollHandlerImpl) Sheet(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyID(r)
	if !ok {
		response.Unauthorized(w, "Missing company in token")
		return
	}

	req, err := requestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pdfBytes, err := h.payrollService.Sheet(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("planilla-%s-Q%d.pdf", req.Period, req.Fortnight)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// MarkPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyID(r)
	if !ok {
		response.Unauthorized(w, "Missing company in token")
		return
	}

	recordID := chi.URLParam(r, "id")
	record, err := h.payrollService.MarkPaid(r.Context(), companyID, recordID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registro marcado como pagado", record)
}

func requestFromQuery(r *http.Request) (payroll.CalculateRequest, error) {
	fortnight, err := strconv.Atoi(r.URL.Query().Get("quincena"))
	if err != nil {
		return payroll.CalculateRequest{}, payroll.ErrInvalidFortnight
	}

	req := payroll.CalculateRequest{
		Period:    r.URL.Query().Get("periodo"),
		Fortnight: fortnight,
	}
	if err := req.Validate(); err != nil {
		return payroll.CalculateRequest{}, err
	}
	return req, nil
}
