package employee

import (
	"context"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(employees), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, companyID string, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create implements employee.EmployeeService. The DNI is stored without
// dashes so the suffix lookup stays deterministic.
func (s *EmployeeServiceImpl) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		CompanyID:        companyID,
		DNI:              validator.NormalizeDNI(req.DNI),
		FullName:         req.FullName,
		JobTitle:         req.JobTitle,
		Department:       req.Department,
		BaseSalary:       req.BaseSalary,
		ExpectedCheckIn:  req.ExpectedCheckIn,
		ExpectedCheckOut: req.ExpectedCheckOut,
		BankName:         req.BankName,
		BankAccount:      req.BankAccount,
		Status:           employee.StatusActive,
	}

	if req.HireDate != nil {
		if hireDate, ok := validator.IsValidDate(*req.HireDate); ok {
			newEmployee.HireDate = &hireDate
		}
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}
