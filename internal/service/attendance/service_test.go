package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/daterange"
)

func strPtr(s string) *string { return &s }

type fakeEmployeeRepo struct {
	emp employee.Employee
	err error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	return f.emp, f.err
}

func (f *fakeEmployeeRepo) GetByDNISuffix(ctx context.Context, suffix, companyID string) (employee.Employee, error) {
	return f.emp, f.err
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return []employee.Employee{f.emp}, f.err
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

type fakeAttendanceRepo struct {
	today     *attendance.Record
	checkIns  []attendance.Record
	checkOuts []string
}

func (f *fakeAttendanceRepo) GetBySuffixAndDate(ctx context.Context, suffix string, date time.Time, companyID string) (attendance.Record, error) {
	if f.today == nil {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return *f.today, nil
}

func (f *fakeAttendanceRepo) UpsertCheckIn(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	f.checkIns = append(f.checkIns, record)
	return record, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, suffix string, date time.Time, checkOut, companyID string) error {
	f.checkOuts = append(f.checkOuts, checkOut)
	return nil
}

func (f *fakeAttendanceRepo) ListBetween(ctx context.Context, from, to time.Time, companyID string) ([]attendance.Record, error) {
	return nil, nil
}

func testService(attRepo *fakeAttendanceRepo, at string) *AttendanceServiceImpl {
	salary := decimal.NewFromInt(15000)
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{
		ID:               "emp-1",
		DNI:              "0801-1990-12345",
		FullName:         "Ana Mejía",
		BaseSalary:       &salary,
		ExpectedCheckIn:  strPtr("08:00"),
		ExpectedCheckOut: strPtr("17:00"),
	}}

	svc := NewAttendanceService(attRepo, empRepo)
	svc.now = func() time.Time {
		clock, _ := time.ParseInLocation("2006-01-02 15:04", "2024-03-05 "+at, daterange.Tegucigalpa)
		return clock
	}
	return svc
}

func TestRegisterFirstEventIsCheckIn(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := testService(repo, "08:03")

	resp, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{DNISuffix: "12345"})
	require.NoError(t, err)

	assert.Equal(t, "check_in", resp.Event)
	assert.Equal(t, "08:03", resp.Time)
	assert.False(t, resp.Late)
	require.Len(t, repo.checkIns, 1)
	assert.Equal(t, "12345", repo.checkIns[0].DNISuffix)
}

func TestRegisterLateWithoutJustificationRejected(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := testService(repo, "08:06")

	_, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{DNISuffix: "12345"})
	assert.ErrorIs(t, err, attendance.ErrJustificationRequired)
	assert.Empty(t, repo.checkIns, "rejected check-in must not be stored")
}

func TestRegisterLateWithJustificationAccepted(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := testService(repo, "08:45")

	resp, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{
		DNISuffix:     "12345",
		Justification: strPtr("Cita médica"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Late)
	require.Len(t, repo.checkIns, 1)
	require.NotNil(t, repo.checkIns[0].Justification)
	assert.Equal(t, "Cita médica", *repo.checkIns[0].Justification)
}

func TestRegisterExactlyFiveMinutesLateIsOnTime(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := testService(repo, "08:05")

	resp, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{DNISuffix: "12345"})
	require.NoError(t, err)
	assert.False(t, resp.Late)
}

func TestRegisterSecondEventIsCheckOut(t *testing.T) {
	repo := &fakeAttendanceRepo{today: &attendance.Record{
		DNISuffix: "12345",
		CheckIn:   strPtr("08:00"),
	}}
	svc := testService(repo, "17:02")

	resp, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{DNISuffix: "12345"})
	require.NoError(t, err)

	assert.Equal(t, "check_out", resp.Event)
	require.Len(t, repo.checkOuts, 1)
	assert.Equal(t, "17:02", repo.checkOuts[0])
	assert.Empty(t, repo.checkIns, "check-out must not overwrite the check-in")
}

func TestRegisterCompletedDayRejected(t *testing.T) {
	repo := &fakeAttendanceRepo{today: &attendance.Record{
		DNISuffix: "12345",
		CheckIn:   strPtr("08:00"),
		CheckOut:  strPtr("17:00"),
	}}
	svc := testService(repo, "18:00")

	_, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{DNISuffix: "12345"})
	assert.ErrorIs(t, err, attendance.ErrDayCompleted)
}

func TestRegisterValidatesSuffix(t *testing.T) {
	svc := testService(&fakeAttendanceRepo{}, "08:00")

	_, err := svc.Register(context.Background(), "co-1", attendance.RegisterRequest{DNISuffix: "12"})
	assert.Error(t, err)
}

func TestListByPresetUnknownPreset(t *testing.T) {
	svc := testService(&fakeAttendanceRepo{}, "10:00")

	_, err := svc.ListByPreset(context.Background(), "co-1", "quarter")
	assert.ErrorIs(t, err, attendance.ErrUnknownPreset)
}

func TestMinutesPastExpected(t *testing.T) {
	cases := []struct {
		actual   string
		expected string
		want     int
	}{
		{"08:00", "08:00", 0},
		{"08:06", "08:00", 6},
		{"07:50", "08:00", -10},
		{"17:30", "17:00", 30},
	}
	for _, c := range cases {
		got, err := minutesPastExpected(c.actual, c.expected)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "minutesPastExpected(%s, %s)", c.actual, c.expected)
	}

	_, err := minutesPastExpected("25:00", "08:00")
	assert.ErrorIs(t, err, attendance.ErrInvalidTimeOfDay)
}
