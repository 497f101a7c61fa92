package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/payroll"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	pr.id, pr.employee_id, pr.company_id, pr.period_label, pr.period_start,
	pr.period_end, pr.base_salary, pr.days_present, pr.worked_hours,
	pr.gross_wage, pr.social_security, pr.retirement_fund, pr.income_tax,
	pr.total_deductions, pr.net_wage, pr.status, pr.created_at, pr.updated_at
`

func scanPayrollRecord(row pgx.Row, joined bool) (payroll.Record, error) {
	var rec payroll.Record
	dest := []any{
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodLabel,
		&rec.PeriodStart, &rec.PeriodEnd, &rec.BaseSalary, &rec.DaysPresent,
		&rec.WorkedHours, &rec.GrossWage, &rec.SocialSecurity,
		&rec.RetirementFund, &rec.IncomeTax, &rec.TotalDeductions,
		&rec.NetWage, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if joined {
		dest = append(dest, &rec.EmployeeName, &rec.JobTitle)
	}
	return rec, row.Scan(dest...)
}

// UpsertRecord implements payroll.PayrollRepository. Rerunning a period
// replaces the employee's draft via the unique (employee_id, period_label)
// constraint.
func (p *payrollRepositoryImpl) UpsertRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records AS pr (
			id, employee_id, company_id, period_label, period_start, period_end,
			base_salary, days_present, worked_hours, gross_wage,
			social_security, retirement_fund, income_tax, total_deductions,
			net_wage, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (employee_id, period_label)
		DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			base_salary = EXCLUDED.base_salary,
			days_present = EXCLUDED.days_present,
			worked_hours = EXCLUDED.worked_hours,
			gross_wage = EXCLUDED.gross_wage,
			social_security = EXCLUDED.social_security,
			retirement_fund = EXCLUDED.retirement_fund,
			income_tax = EXCLUDED.income_tax,
			total_deductions = EXCLUDED.total_deductions,
			net_wage = EXCLUDED.net_wage,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + payrollColumns + `
	`

	stored, err := scanPayrollRecord(q.QueryRow(ctx, query,
		uuid.NewString(),
		record.EmployeeID, record.CompanyID, record.PeriodLabel,
		record.PeriodStart, record.PeriodEnd, record.BaseSalary,
		record.DaysPresent, record.WorkedHours, record.GrossWage,
		record.SocialSecurity, record.RetirementFund, record.IncomeTax,
		record.TotalDeductions, record.NetWage, record.Status,
	), false)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("upsert payroll record: %w", err)
	}

	return stored, nil
}

// MarkRecordPaid implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) MarkRecordPaid(ctx context.Context, recordID string, companyID string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_records pr
		SET status = $1, updated_at = NOW()
		WHERE pr.id = $2 AND pr.company_id = $3 AND pr.status = $4
		RETURNING ` + payrollColumns + `
	`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query,
		payroll.StatusPaid, recordID, companyID, payroll.StatusDraft,
	), false)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return payroll.Record{}, fmt.Errorf("mark payroll record paid: %w", err)
	}

	// No draft row matched: distinguish an already-paid record from a
	// missing one.
	var status payroll.Status
	err = q.QueryRow(ctx,
		`SELECT status FROM payroll_records WHERE id = $1 AND company_id = $2`,
		recordID, companyID,
	).Scan(&status)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return payroll.Record{}, payroll.ErrRecordNotFound
	case err != nil:
		return payroll.Record{}, fmt.Errorf("check payroll record status: %w", err)
	case status == payroll.StatusPaid:
		return payroll.Record{}, payroll.ErrRecordAlreadyPaid
	default:
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
}

// ListRecordsByPeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListRecordsByPeriod(ctx context.Context, companyID string, periodLabel string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.job_title
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.company_id = $1 AND pr.period_label = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, companyID, periodLabel)
	if err != nil {
		return nil, fmt.Errorf("list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows, true)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
