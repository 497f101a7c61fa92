package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodWindow identifies one payroll fortnight.
type PeriodWindow struct {
	Year      int
	Month     time.Month
	Fortnight int // 1 = days 1-15, 2 = day 16 through end of month
}

// Label is the stable period key stored with payroll records, e.g.
// "2024-02-Q2".
func (p PeriodWindow) Label() string {
	return fmt.Sprintf("%04d-%02d-Q%d", p.Year, p.Month, p.Fortnight)
}

// ApplyDeductions reports whether statutory deductions are due for this
// window. By product convention IHSS, RAP and ISR are withheld once a
// month, on the second fortnight.
func (p PeriodWindow) ApplyDeductions() bool {
	return p.Fortnight == 2
}

// Line is one employee's fortnightly payroll result.
type Line struct {
	EmployeeID    string
	EmployeeName  string
	JobTitle      string
	DNISuffix     string
	MonthlySalary decimal.Decimal
	// DaysPresent counts matched attendance rows with both events in the
	// window; DaysWithHours counts only rows that yielded positive time.
	DaysPresent     int
	DaysWithHours   int
	WorkedHours     decimal.Decimal
	PeriodWage      decimal.Decimal
	SocialSecurity  decimal.Decimal // IHSS
	RetirementFund  decimal.Decimal // RAP
	IncomeTax       decimal.Decimal // ISR
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	BankName        string
	BankAccount     string
}

// Run is a computed payroll for one period window.
type Run struct {
	Period        PeriodWindow
	Lines         []Line
	EmployeeCount int
	TotalNetPay   decimal.Decimal
}

// Record is the persisted form of a Line, keyed by employee and period
// label.
type Record struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	PeriodLabel     string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	BaseSalary      decimal.Decimal
	DaysPresent     int
	WorkedHours     decimal.Decimal
	GrossWage       decimal.Decimal
	SocialSecurity  decimal.Decimal
	RetirementFund  decimal.Decimal
	IncomeTax       decimal.Decimal
	TotalDeductions decimal.Decimal
	NetWage         decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	JobTitle     *string
}

type Status string

const (
	StatusDraft Status = "draft"
	StatusPaid  Status = "paid"
)
