package payroll

import (
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	Period    string `json:"periodo"`  // "YYYY-MM"
	Fortnight int    `json:"quincena"` // 1 or 2
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "periodo", Message: "must be YYYY-MM"})
	}
	if r.Fortnight != 1 && r.Fortnight != 2 {
		errs = append(errs, validator.ValidationError{Field: "quincena", Message: "must be 1 or 2"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window resolves the request to a PeriodWindow. Validate must have
// passed first.
func (r *CalculateRequest) Window() (PeriodWindow, error) {
	year, month, ok := validator.ParsePeriod(r.Period)
	if !ok {
		return PeriodWindow{}, ErrInvalidPeriod
	}
	if r.Fortnight != 1 && r.Fortnight != 2 {
		return PeriodWindow{}, ErrInvalidFortnight
	}
	return PeriodWindow{Year: year, Month: month, Fortnight: r.Fortnight}, nil
}

// LineResponse carries one payroll line with monetary fields rendered as
// localized currency strings; the numeric values stay server-side.
type LineResponse struct {
	EmployeeName    string `json:"nombre"`
	JobTitle        string `json:"cargo"`
	MonthlySalary   string `json:"salario_mensual"`
	DaysPresent     int    `json:"dias"`
	DaysWithHours   int    `json:"dias_con_horas"`
	WorkedHours     string `json:"horas"`
	PeriodWage      string `json:"salario_quincenal"`
	SocialSecurity  string `json:"ihss"`
	RetirementFund  string `json:"rap"`
	IncomeTax       string `json:"isr"`
	TotalDeductions string `json:"deducciones"`
	NetPay          string `json:"pago_neto"`
	BankName        string `json:"banco"`
	BankAccount     string `json:"cuenta"`
}

type RunResponse struct {
	Period        string         `json:"periodo"`
	Fortnight     int            `json:"quincena"`
	EmployeeCount int            `json:"empleados"`
	TotalNetPay   string         `json:"total_neto"`
	Lines         []LineResponse `json:"planilla"`
}

type RecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	JobTitle        *string `json:"job_title,omitempty"`
	PeriodLabel     string  `json:"period"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	BaseSalary      string  `json:"base_salary"`
	DaysPresent     int     `json:"days_present"`
	WorkedHours     string  `json:"worked_hours"`
	GrossWage       string  `json:"gross_wage"`
	SocialSecurity  string  `json:"social_security"`
	RetirementFund  string  `json:"retirement_fund"`
	IncomeTax       string  `json:"income_tax"`
	TotalDeductions string  `json:"total_deductions"`
	NetWage         string  `json:"net_wage"`
	Status          string  `json:"status"`
}
