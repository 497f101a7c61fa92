package employee

import (
	"github.com/shopspring/decimal"

	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	DNI              string           `json:"dni"`
	FullName         string           `json:"full_name"`
	JobTitle         string           `json:"job_title"`
	Department       *string          `json:"department,omitempty"`
	BaseSalary       *decimal.Decimal `json:"base_salary,omitempty"`
	ExpectedCheckIn  *string          `json:"expected_check_in,omitempty"`  // "HH:MM"
	ExpectedCheckOut *string          `json:"expected_check_out,omitempty"` // "HH:MM"
	BankName         *string          `json:"bank_name,omitempty"`
	BankAccount      *string          `json:"bank_account,omitempty"`
	HireDate         *string          `json:"hire_date,omitempty"` // "YYYY-MM-DD"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{Field: "dni", Message: "must be a 13-digit DNI, dashes optional"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "is required"})
	}
	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if r.ExpectedCheckIn != nil && !validator.IsValidClockTime(*r.ExpectedCheckIn) {
		errs = append(errs, validator.ValidationError{Field: "expected_check_in", Message: "must be HH:MM"})
	}
	if r.ExpectedCheckOut != nil && !validator.IsValidClockTime(*r.ExpectedCheckOut) {
		errs = append(errs, validator.ValidationError{Field: "expected_check_out", Message: "must be HH:MM"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string           `json:"id"`
	DNI         string           `json:"dni"`
	FullName    string           `json:"full_name"`
	JobTitle    string           `json:"job_title"`
	Department  *string          `json:"department,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	BankName    *string          `json:"bank_name,omitempty"`
	BankAccount *string          `json:"bank_account,omitempty"`
	Status      string           `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		DNI:         e.DNI,
		FullName:    e.FullName,
		JobTitle:    e.JobTitle,
		Department:  e.Department,
		BaseSalary:  e.BaseSalary,
		BankName:    e.BankName,
		BankAccount: e.BankAccount,
		Status:      string(e.Status),
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, ToResponse(e))
	}
	return result
}
