package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/daterange"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

// lateGraceMinutes is the tolerance around the expected time: up to five
// minutes past is still "on time", more requires a justification.
const lateGraceMinutes = 5

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository

	// now is replaceable in tests; production uses the Honduras clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            func() time.Time { return time.Now().In(daterange.Tegucigalpa) },
	}
}

func (s *AttendanceServiceImpl) Register(ctx context.Context, companyID string, req attendance.RegisterRequest) (attendance.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RegisterResponse{}, err
	}

	emp, err := s.employeeRepo.GetByDNISuffix(ctx, req.DNISuffix, companyID)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	now := s.now().In(daterange.Tegucigalpa)
	today := daterange.DateOnly(now)
	clock := now.Format("15:04")

	record, err := s.attendanceRepo.GetBySuffixAndDate(ctx, req.DNISuffix, today, companyID)
	switch {
	case errors.Is(err, attendance.ErrRecordNotFound) || (err == nil && !record.HasCheckIn()):
		return s.checkIn(ctx, emp, req, today, clock, companyID)
	case err != nil:
		return attendance.RegisterResponse{}, fmt.Errorf("load today's attendance: %w", err)
	case !record.HasCheckOut():
		return s.checkOut(ctx, emp, req.DNISuffix, today, clock, companyID)
	default:
		return attendance.RegisterResponse{}, attendance.ErrDayCompleted
	}
}

func (s *AttendanceServiceImpl) checkIn(
	ctx context.Context,
	emp employee.Employee,
	req attendance.RegisterRequest,
	today time.Time,
	clock string,
	companyID string,
) (attendance.RegisterResponse, error) {
	if emp.ExpectedCheckIn == nil {
		return attendance.RegisterResponse{}, employee.ErrNoExpectedTimes
	}

	delta, err := minutesPastExpected(clock, *emp.ExpectedCheckIn)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	justified := req.Justification != nil && !validator.IsEmpty(*req.Justification)
	if delta > lateGraceMinutes && !justified {
		return attendance.RegisterResponse{}, attendance.ErrJustificationRequired
	}

	record := attendance.Record{
		CompanyID:     companyID,
		DNISuffix:     req.DNISuffix,
		Date:          today,
		CheckIn:       &clock,
		Justification: req.Justification,
	}
	if _, err := s.attendanceRepo.UpsertCheckIn(ctx, record); err != nil {
		return attendance.RegisterResponse{}, fmt.Errorf("store check-in: %w", err)
	}

	return attendance.RegisterResponse{
		Event:   "check_in",
		Time:    clock,
		Late:    delta > lateGraceMinutes,
		Message: checkInMessage(delta, justified),
	}, nil
}

func (s *AttendanceServiceImpl) checkOut(
	ctx context.Context,
	emp employee.Employee,
	suffix string,
	today time.Time,
	clock string,
	companyID string,
) (attendance.RegisterResponse, error) {
	if emp.ExpectedCheckOut == nil {
		return attendance.RegisterResponse{}, employee.ErrNoExpectedTimes
	}

	delta, err := minutesPastExpected(clock, *emp.ExpectedCheckOut)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	if err := s.attendanceRepo.SetCheckOut(ctx, suffix, today, clock, companyID); err != nil {
		return attendance.RegisterResponse{}, fmt.Errorf("store check-out: %w", err)
	}

	return attendance.RegisterResponse{
		Event:   "check_out",
		Time:    clock,
		Message: checkOutMessage(delta),
	}, nil
}

func (s *AttendanceServiceImpl) ListByPreset(ctx context.Context, companyID string, preset string) (attendance.ListResponse, error) {
	rng := daterange.Resolve(preset, s.now())
	if rng.IsZero() {
		return attendance.ListResponse{}, attendance.ErrUnknownPreset
	}

	// The repository filters on inclusive calendar dates; [from, to)
	// instants translate to [from, to-1day] dates.
	from := daterange.DateOnly(rng.From)
	to := daterange.DateOnly(rng.To.AddDate(0, 0, -1))

	records, err := s.attendanceRepo.ListBetween(ctx, from, to, companyID)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("list attendance: %w", err)
	}

	data := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		data = append(data, attendance.RecordResponse{
			ID:            r.ID,
			DNISuffix:     r.DNISuffix,
			Date:          r.Date.Format("2006-01-02"),
			CheckIn:       r.CheckIn,
			CheckOut:      r.CheckOut,
			Justification: r.Justification,
		})
	}

	return attendance.ListResponse{
		Data:  data,
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Total: len(data),
	}, nil
}

// minutesPastExpected returns how many minutes the actual clock time is
// past the expected "HH:MM" time; negative means early.
func minutesPastExpected(actual, expected string) (int, error) {
	actualMin, ok := validator.ParseClockTime(actual)
	if !ok {
		return 0, attendance.ErrInvalidTimeOfDay
	}
	expectedMin, ok := validator.ParseClockTime(expected)
	if !ok {
		return 0, attendance.ErrInvalidTimeOfDay
	}
	return actualMin - expectedMin, nil
}

func checkInMessage(delta int, justified bool) string {
	switch {
	case delta <= -lateGraceMinutes:
		return "Entrada anticipada registrada."
	case delta > lateGraceMinutes && justified:
		return "Asistencia registrada con justificación."
	default:
		return "Asistencia registrada a tiempo."
	}
}

func checkOutMessage(delta int) string {
	switch {
	case delta < -lateGraceMinutes:
		return "Salida anticipada registrada."
	case delta > lateGraceMinutes:
		return "Salida tardía registrada."
	default:
		return "Salida registrada correctamente."
	}
}
