package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	CompanyID string
	// DNI is the national identity number; its last five digits are the
	// join key against attendance records.
	DNI              string
	FullName         string
	JobTitle         string
	Department       *string
	BaseSalary       *decimal.Decimal
	ExpectedCheckIn  *string // "HH:MM" local time
	ExpectedCheckOut *string
	BankName         *string
	BankAccount      *string
	HireDate         *time.Time
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
