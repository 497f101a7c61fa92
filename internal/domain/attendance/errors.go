package attendance

import "errors"

var (
	// ErrJustificationRequired is the distinct signal for a check-in more
	// than five minutes late without an explanation; the kiosk re-prompts
	// on it instead of treating it as a failure.
	ErrJustificationRequired = errors.New("late check-in requires a justification")

	ErrDayCompleted     = errors.New("check-in and check-out already registered for today")
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrUnknownPreset    = errors.New("unknown date range preset")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")
)
