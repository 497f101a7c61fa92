package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Register processes one kiosk event. The first qualifying event of
	// the day is the check-in, the second is the check-out; a check-in
	// more than five minutes past the employee's expected time without a
	// justification fails with ErrJustificationRequired.
	Register(ctx context.Context, companyID string, req RegisterRequest) (RegisterResponse, error)

	// ListByPreset returns records inside the named date-range preset
	// (today, week, fortnight, month, year) evaluated at the current
	// Honduras time.
	ListByPreset(ctx context.Context, companyID string, preset string) (ListResponse, error)
}
