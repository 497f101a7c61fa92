package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, company_id, dni, full_name, job_title, department, base_salary,
	expected_check_in, expected_check_out, bank_name, bank_account,
	hire_date, status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.DNI, &emp.FullName, &emp.JobTitle,
		&emp.Department, &emp.BaseSalary, &emp.ExpectedCheckIn,
		&emp.ExpectedCheckOut, &emp.BankName, &emp.BankAccount,
		&emp.HireDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee by id: %w", err)
	}

	return emp, nil
}

// GetByDNISuffix implements employee.EmployeeRepository. The suffix match
// strips dashes from the stored DNI so both "0801-1990-12345" and
// "080119912345" formats resolve.
func (e *employeeRepositoryImpl) GetByDNISuffix(ctx context.Context, suffix string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE RIGHT(REPLACE(dni, '-', ''), 5) = $1
			AND company_id = $2
			AND status = $3
			AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, suffix, companyID, employee.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee by dni suffix: %w", err)
	}

	return emp, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND status = $2 AND deleted_at IS NULL
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, companyID, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, company_id, dni, full_name, job_title, department, base_salary,
			expected_check_in, expected_check_out, bank_name, bank_account,
			hire_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + employeeColumns + `
	`

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(),
		newEmployee.CompanyID, newEmployee.DNI, newEmployee.FullName,
		newEmployee.JobTitle, newEmployee.Department, newEmployee.BaseSalary,
		newEmployee.ExpectedCheckIn, newEmployee.ExpectedCheckOut,
		newEmployee.BankName, newEmployee.BankAccount,
		newEmployee.HireDate, newEmployee.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrDNIExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return created, nil
}
