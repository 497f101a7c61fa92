package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, company_id, dni_suffix, date, check_in, check_out, justification,
	created_at, updated_at
`

func scanAttendanceRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.DNISuffix, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.Justification,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// GetBySuffixAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetBySuffixAndDate(ctx context.Context, suffix string, date time.Time, companyID string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE dni_suffix = $1 AND date = $2 AND company_id = $3
	`

	rec, err := scanAttendanceRecord(q.QueryRow(ctx, query, suffix, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("get attendance record: %w", err)
	}

	return rec, nil
}

// UpsertCheckIn implements attendance.AttendanceRepository. The table has
// a unique constraint on (company_id, dni_suffix, date); a conflicting
// insert updates the check-in and justification in place.
func (a *attendanceRepositoryImpl) UpsertCheckIn(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, company_id, dni_suffix, date, check_in, justification)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id, dni_suffix, date)
		DO UPDATE SET
			check_in = EXCLUDED.check_in,
			justification = EXCLUDED.justification,
			updated_at = NOW()
		RETURNING ` + attendanceColumns + `
	`

	stored, err := scanAttendanceRecord(q.QueryRow(ctx, query,
		uuid.NewString(),
		record.CompanyID, record.DNISuffix, record.Date,
		record.CheckIn, record.Justification,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("upsert check-in: %w", err)
	}

	return stored, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, suffix string, date time.Time, checkOut string, companyID string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $1, updated_at = NOW()
		WHERE dni_suffix = $2 AND date = $3 AND company_id = $4
		RETURNING id
	`

	var id string
	if err := q.QueryRow(ctx, query, checkOut, suffix, date, companyID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("set check-out: %w", err)
	}

	return nil
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time, companyID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date >= $1 AND date <= $2 AND company_id = $3
		ORDER BY date, dni_suffix
	`

	rows, err := q.Query(ctx, query, from, to, companyID)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
