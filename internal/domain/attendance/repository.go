package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. All
// methods take companyID so one tenant can never read another's rows.
type AttendanceRepository interface {
	// GetBySuffixAndDate returns the day's record for a DNI suffix, or
	// ErrRecordNotFound if the employee has not checked in yet.
	GetBySuffixAndDate(ctx context.Context, suffix string, date time.Time, companyID string) (Record, error)

	// UpsertCheckIn records the first event of the day. Re-registering a
	// check-in for the same (suffix, date) overwrites it, which the
	// service layer prevents by checking first: the stored value is
	// always the first qualifying event.
	UpsertCheckIn(ctx context.Context, record Record) (Record, error)

	// SetCheckOut records the closing event on an existing row.
	SetCheckOut(ctx context.Context, suffix string, date time.Time, checkOut string, companyID string) error

	// ListBetween returns records whose date falls in [from, to] inclusive.
	ListBetween(ctx context.Context, from, to time.Time, companyID string) ([]Record, error)
}
