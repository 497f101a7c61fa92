package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	byID    map[string]employee.Employee
	created *employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByDNISuffix(ctx context.Context, suffix, companyID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0, len(f.byID))
	for _, emp := range f.byID {
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-created"
	f.created = &e
	return e, nil
}

func TestGetReturnsEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", DNI: "0801199012345", FullName: "Ana Mejía", JobTitle: "Contadora", Status: employee.StatusActive},
	}}
	svc := NewEmployeeService(repo)

	got, err := svc.Get(context.Background(), "co-1", "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Mejía", got.FullName)
	assert.Equal(t, "active", got.Status)
}

func TestGetUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{byID: map[string]employee.Employee{}})

	_, err := svc.Get(context.Background(), "co-1", "nope")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateNormalizesDNI(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
	svc := NewEmployeeService(repo)
	base := decimal.NewFromInt(15000)

	got, err := svc.Create(context.Background(), "co-1", employee.CreateEmployeeRequest{
		DNI:        "0801-1990-12345",
		FullName:   "Ana Mejía",
		JobTitle:   "Contadora",
		BaseSalary: &base,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, "0801199012345", repo.created.DNI, "dashes must be stripped before storing")
	assert.Equal(t, employee.StatusActive, repo.created.Status)
	assert.Equal(t, "emp-created", got.ID)
}

func TestCreateRejectsInvalidDNI(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), "co-1", employee.CreateEmployeeRequest{
		DNI:      "12345",
		FullName: "Ana Mejía",
		JobTitle: "Contadora",
	})
	require.Error(t, err)
	assert.Nil(t, repo.created, "invalid request must not reach the repository")
}
