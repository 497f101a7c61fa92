package payroll

import "errors"

var (
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrInvalidFortnight  = errors.New("fortnight must be 1 or 2")
	ErrNoEmployees       = errors.New("no active employees to compute payroll for")
	ErrRecordNotFound    = errors.New("payroll record not found")
	ErrRecordAlreadyPaid = errors.New("payroll record already paid, cannot modify")
)
