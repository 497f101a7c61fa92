package attendance

import "time"

// Record is one calendar day of attendance for one employee, keyed by the
// DNI suffix the kiosk submits rather than the employee ID, mirroring the
// control_asistencia table.
type Record struct {
	ID            string
	CompanyID     string
	DNISuffix     string
	Date          time.Time
	CheckIn       *string // "HH:MM" local time, nil until the first event
	CheckOut      *string
	Justification *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasCheckIn reports whether the day's first event was registered.
func (r Record) HasCheckIn() bool {
	return r.CheckIn != nil && *r.CheckIn != ""
}

// HasCheckOut reports whether the day's closing event was registered.
func (r Record) HasCheckOut() bool {
	return r.CheckOut != nil && *r.CheckOut != ""
}

// Complete reports whether the record has both events and can contribute
// worked hours.
func (r Record) Complete() bool {
	return r.HasCheckIn() && r.HasCheckOut()
}
