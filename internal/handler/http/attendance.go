package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/handler/http/middleware"
	"github.com/sistema-rh/planilla-backend-go/internal/handler/http/response"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/daterange"
)

type AttendanceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService

	// kioskCompanyID scopes the unauthenticated kiosk endpoint; the
	// deployment serves a single tenant's kiosks.
	kioskCompanyID string
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, kioskCompanyID string) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		kioskCompanyID:    kioskCompanyID,
	}
}

// Register implements AttendanceHandler. The kiosk posts the last five
// DNI digits; the service decides whether this is a check-in or a
// check-out.
func (h *attendanceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req attendance.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Register(r.Context(), h.kioskCompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("attendance event registered",
		"event", result.Event,
		"last5", req.DNISuffix,
		"late", result.Late,
	)
	response.SuccessWithMessage(w, result.Message, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CompanyID(r)
	if !ok {
		response.Unauthorized(w, "Missing company in token")
		return
	}

	preset := r.URL.Query().Get("rango")
	if preset == "" {
		preset = daterange.PresetFortnight
	}

	result, err := h.attendanceService.ListByPreset(r.Context(), companyID, preset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
