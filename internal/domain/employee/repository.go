package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	// GetByDNISuffix looks an employee up by the last five digits of the
	// dash-stripped DNI, the identifier attendance kiosks submit.
	GetByDNISuffix(ctx context.Context, suffix string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
