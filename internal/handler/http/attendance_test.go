package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/handler/http/response"
)

type stubAttendanceService struct {
	resp attendance.RegisterResponse
	err  error

	gotCompanyID string
	gotRequest   attendance.RegisterRequest
}

func (s *stubAttendanceService) Register(ctx context.Context, companyID string, req attendance.RegisterRequest) (attendance.RegisterResponse, error) {
	s.gotCompanyID = companyID
	s.gotRequest = req
	return s.resp, s.err
}

func (s *stubAttendanceService) ListByPreset(ctx context.Context, companyID string, preset string) (attendance.ListResponse, error) {
	return attendance.ListResponse{}, nil
}

func postRegister(t *testing.T, handler AttendanceHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Register(rec, req)
	return rec
}

func TestAttendanceRegisterSuccess(t *testing.T) {
	svc := &stubAttendanceService{resp: attendance.RegisterResponse{
		Event:   "check_in",
		Time:    "08:02",
		Message: "Asistencia registrada a tiempo.",
	}}
	handler := NewAttendanceHandler(svc, "co-1")

	rec := postRegister(t, handler, `{"last5":"12345"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "co-1", svc.gotCompanyID)
	assert.Equal(t, "12345", svc.gotRequest.DNISuffix)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Asistencia registrada a tiempo.", body.Message)
}

func TestAttendanceRegisterJustificationRequired(t *testing.T) {
	svc := &stubAttendanceService{err: attendance.ErrJustificationRequired}
	handler := NewAttendanceHandler(svc, "co-1")

	rec := postRegister(t, handler, `{"last5":"12345"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "JUSTIFICATION_REQUIRED", body.Error.Code)
}

func TestAttendanceRegisterDayCompletedConflict(t *testing.T) {
	svc := &stubAttendanceService{err: attendance.ErrDayCompleted}
	handler := NewAttendanceHandler(svc, "co-1")

	rec := postRegister(t, handler, `{"last5":"12345"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceRegisterMalformedBody(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc, "co-1")

	rec := postRegister(t, handler, `{"last5":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.gotRequest.DNISuffix, "service must not be called on a malformed body")
}
