package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	List(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	Get(ctx context.Context, companyID string, id string) (EmployeeResponse, error)
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
}
