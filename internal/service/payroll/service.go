package payroll

import (
	"context"
	"fmt"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/payroll"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/currency"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/database"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/daterange"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/pdf"
	"github.com/sistema-rh/planilla-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	calculator     *Calculator
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository

	// withTx runs fn inside one database transaction; replaceable in
	// tests.
	withTx func(ctx context.Context, fn func(context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	calculator *Calculator,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		calculator:     calculator,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		withTx: func(ctx context.Context, fn func(context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *PayrollServiceImpl) Calculate(ctx context.Context, companyID string, req payroll.CalculateRequest) (payroll.RunResponse, error) {
	run, err := s.computeRun(ctx, companyID, req)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	// One transaction for the whole run: a failed upsert rolls back every
	// line, never leaving a half-persisted period behind.
	window := daterange.Fortnight(run.Period.Year, run.Period.Month, run.Period.Fortnight)
	err = s.withTx(ctx, func(txCtx context.Context) error {
		for _, line := range run.Lines {
			record := payroll.Record{
				EmployeeID:      line.EmployeeID,
				CompanyID:       companyID,
				PeriodLabel:     run.Period.Label(),
				PeriodStart:     window.Start,
				PeriodEnd:       window.End,
				BaseSalary:      line.MonthlySalary,
				DaysPresent:     line.DaysPresent,
				WorkedHours:     line.WorkedHours,
				GrossWage:       line.PeriodWage,
				SocialSecurity:  line.SocialSecurity,
				RetirementFund:  line.RetirementFund,
				IncomeTax:       line.IncomeTax,
				TotalDeductions: line.TotalDeductions,
				NetWage:         line.NetPay,
				Status:          payroll.StatusDraft,
			}
			if _, err := s.payrollRepo.UpsertRecord(txCtx, record); err != nil {
				return fmt.Errorf("persist payroll record for employee %s: %w", line.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(run, req), nil
}

// MarkPaid transitions one stored record from draft to paid.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, companyID string, recordID string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.MarkRecordPaid(ctx, recordID, companyID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

func (s *PayrollServiceImpl) GetRecords(ctx context.Context, companyID string, req payroll.CalculateRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	window, err := req.Window()
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListRecordsByPeriod(ctx, companyID, window.Label())
	if err != nil {
		return nil, fmt.Errorf("list payroll records: %w", err)
	}

	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, toRecordResponse(r))
	}
	return result, nil
}

func toRecordResponse(r payroll.Record) payroll.RecordResponse {
	return payroll.RecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		JobTitle:        r.JobTitle,
		PeriodLabel:     r.PeriodLabel,
		PeriodStart:     r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       r.PeriodEnd.Format("2006-01-02"),
		BaseSalary:      currency.Lempiras(r.BaseSalary),
		DaysPresent:     r.DaysPresent,
		WorkedHours:     r.WorkedHours.StringFixed(2),
		GrossWage:       currency.Lempiras(r.GrossWage),
		SocialSecurity:  currency.Lempiras(r.SocialSecurity),
		RetirementFund:  currency.Lempiras(r.RetirementFund),
		IncomeTax:       currency.Lempiras(r.IncomeTax),
		TotalDeductions: currency.Lempiras(r.TotalDeductions),
		NetWage:         currency.Lempiras(r.NetWage),
		Status:          string(r.Status),
	}
}

func (s *PayrollServiceImpl) Sheet(ctx context.Context, companyID string, req payroll.CalculateRequest) ([]byte, error) {
	run, err := s.computeRun(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	return pdf.RenderSheet(run)
}

// computeRun loads the employee and attendance snapshots for the window
// and runs the pure calculator over them.
func (s *PayrollServiceImpl) computeRun(ctx context.Context, companyID string, req payroll.CalculateRequest) (payroll.Run, error) {
	if err := req.Validate(); err != nil {
		return payroll.Run{}, err
	}
	period, err := req.Window()
	if err != nil {
		return payroll.Run{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("get employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.Run{}, payroll.ErrNoEmployees
	}

	window := daterange.Fortnight(period.Year, period.Month, period.Fortnight)
	records, err := s.attendanceRepo.ListBetween(ctx, window.Start, window.End, companyID)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("get attendance records: %w", err)
	}

	return s.calculator.Calculate(employees, records, period, period.ApplyDeductions()), nil
}

func toRunResponse(run payroll.Run, req payroll.CalculateRequest) payroll.RunResponse {
	lines := make([]payroll.LineResponse, 0, len(run.Lines))
	for _, l := range run.Lines {
		lines = append(lines, payroll.LineResponse{
			EmployeeName:    l.EmployeeName,
			JobTitle:        l.JobTitle,
			MonthlySalary:   currency.Lempiras(l.MonthlySalary),
			DaysPresent:     l.DaysPresent,
			DaysWithHours:   l.DaysWithHours,
			WorkedHours:     l.WorkedHours.StringFixed(2),
			PeriodWage:      currency.Lempiras(l.PeriodWage),
			SocialSecurity:  currency.Lempiras(l.SocialSecurity),
			RetirementFund:  currency.Lempiras(l.RetirementFund),
			IncomeTax:       currency.Lempiras(l.IncomeTax),
			TotalDeductions: currency.Lempiras(l.TotalDeductions),
			NetPay:          currency.Lempiras(l.NetPay),
			BankName:        l.BankName,
			BankAccount:     l.BankAccount,
		})
	}

	return payroll.RunResponse{
		Period:        req.Period,
		Fortnight:     req.Fortnight,
		EmployeeCount: run.EmployeeCount,
		TotalNetPay:   currency.Lempiras(run.TotalNetPay),
		Lines:         lines,
	}
}
