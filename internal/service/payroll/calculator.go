package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sistema-rh/planilla-backend-go/internal/config"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/payroll"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/daterange"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

// Business rule: the hourly wage divides the monthly salary by a fixed
// 30-day month of 8-hour days, regardless of the calendar.
var (
	daysPerMonth   = decimal.NewFromInt(30)
	hoursPerDay    = decimal.NewFromInt(8)
	minutesPerHour = decimal.NewFromInt(60)
)

// Calculator computes fortnightly payroll runs. It is a pure transform
// over its inputs plus the statutory configuration: no I/O, no clock, no
// shared state, safe for concurrent use across tenants and periods.
type Calculator struct {
	statutory config.StatutoryConfig
}

func NewCalculator(statutory config.StatutoryConfig) *Calculator {
	return &Calculator{statutory: statutory}
}

// Calculate produces one payroll line per eligible employee. Employees
// without a usable DNI or a positive base salary are excluded (not an
// error); employees with no matching attendance still get a zero line.
// Statutory deductions are applied only when applyDeductions is set;
// the caller decides, by convention on the second fortnight.
func (c *Calculator) Calculate(
	employees []employee.Employee,
	records []attendance.Record,
	period payroll.PeriodWindow,
	applyDeductions bool,
) payroll.Run {
	// The window is always derived here, never passed in as raw dates, so
	// CLI, HTTP and tests share identical boundary semantics.
	window := daterange.Fortnight(period.Year, period.Month, period.Fortnight)

	run := payroll.Run{Period: period, TotalNetPay: decimal.Zero}

	for _, emp := range employees {
		suffix, ok := validator.DNISuffix(emp.DNI)
		if !ok {
			continue
		}
		if emp.BaseSalary == nil || !emp.BaseSalary.IsPositive() {
			continue
		}
		baseSalary := *emp.BaseSalary

		daysPresent := 0
		daysWithHours := 0
		workedMinutes := 0
		for _, rec := range records {
			if !isPayable(rec, suffix, window) {
				continue
			}
			daysPresent++
			minutes := workedMinutesOf(rec)
			if minutes > 0 {
				daysWithHours++
				workedMinutes += minutes
			}
		}

		workedHours := decimal.NewFromInt(int64(workedMinutes)).Div(minutesPerHour)
		hourlyWage := baseSalary.Div(daysPerMonth).Div(hoursPerDay)
		periodWage := hourlyWage.Mul(workedHours)

		ihss := decimal.Zero
		rap := decimal.Zero
		isr := decimal.Zero
		if applyDeductions {
			ihss = c.socialSecurity(baseSalary)
			rap = c.retirementFund(baseSalary)
			isr = c.IncomeTax(baseSalary)
		}
		totalDeductions := ihss.Add(rap).Add(isr)
		netPay := periodWage.Sub(totalDeductions)

		line := payroll.Line{
			EmployeeID:      emp.ID,
			EmployeeName:    emp.FullName,
			JobTitle:        emp.JobTitle,
			DNISuffix:       suffix,
			MonthlySalary:   baseSalary,
			DaysPresent:     daysPresent,
			DaysWithHours:   daysWithHours,
			WorkedHours:     workedHours,
			PeriodWage:      periodWage,
			SocialSecurity:  ihss,
			RetirementFund:  rap,
			IncomeTax:       isr,
			TotalDeductions: totalDeductions,
			NetPay:          netPay,
		}
		if emp.BankName != nil {
			line.BankName = *emp.BankName
		}
		if emp.BankAccount != nil {
			line.BankAccount = *emp.BankAccount
		}

		run.Lines = append(run.Lines, line)
		run.TotalNetPay = run.TotalNetPay.Add(netPay)
	}

	run.EmployeeCount = len(run.Lines)
	return run
}

// isPayable is the record-selection policy: the record belongs to the
// employee, falls inside the inclusive window, and carries both events.
// Everything else is silently excluded rather than raised: bad rows
// degrade one employee's hours, never the whole company's payroll.
func isPayable(rec attendance.Record, suffix string, window daterange.Window) bool {
	if rec.DNISuffix != suffix {
		return false
	}
	if !rec.Complete() {
		return false
	}
	return window.ContainsDate(rec.Date)
}

// workedMinutesOf computes same-day check-out minus check-in in minutes.
// Unparseable times and non-positive spans contribute nothing; the row
// still counted toward presence in Calculate.
func workedMinutesOf(rec attendance.Record) int {
	in, ok := validator.ParseClockTime(*rec.CheckIn)
	if !ok {
		return 0
	}
	out, ok := validator.ParseClockTime(*rec.CheckOut)
	if !ok {
		return 0
	}
	if out <= in {
		return 0
	}
	return out - in
}

// socialSecurity is the employee IHSS contribution: the statutory rate on
// the base salary, capped at the minimum-wage reference.
func (c *Calculator) socialSecurity(baseSalary decimal.Decimal) decimal.Decimal {
	contributionBase := decimal.Min(baseSalary, c.statutory.MinimumWage)
	return contributionBase.Mul(c.statutory.SocialSecurityRate)
}

// retirementFund is the employee RAP contribution: the statutory rate on
// the salary portion above the minimum-wage reference.
func (c *Calculator) retirementFund(baseSalary decimal.Decimal) decimal.Decimal {
	excess := baseSalary.Sub(c.statutory.MinimumWage)
	if excess.IsNegative() {
		return decimal.Zero
	}
	return excess.Mul(c.statutory.RetirementFundRate)
}
