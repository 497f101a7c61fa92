package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDNIExists        = errors.New("DNI already registered")
	ErrNoExpectedTimes  = errors.New("employee has no expected check-in/check-out times assigned")
)
