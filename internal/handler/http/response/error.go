package response

import (
	"errors"
	"net/http"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/attendance"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/employee"
	"github.com/sistema-rh/planilla-backend-go/internal/domain/payroll"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Empleado no encontrado")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "Ya existe un empleado con ese DNI")
	case errors.Is(err, employee.ErrNoExpectedTimes):
		BadRequest(w, "El empleado no tiene horario de entrada configurado", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrJustificationRequired):
		JustificationRequired(w, "Llegada tarde: se requiere una justificación")
	case errors.Is(err, attendance.ErrDayCompleted):
		Conflict(w, "Ya se registró entrada y salida para hoy")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Registro de asistencia no encontrado")
	case errors.Is(err, attendance.ErrUnknownPreset):
		BadRequest(w, "Rango de fechas no reconocido", nil)
	case errors.Is(err, attendance.ErrInvalidTimeOfDay):
		BadRequest(w, "Hora inválida", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Período inválido, use el formato YYYY-MM", nil)
	case errors.Is(err, payroll.ErrInvalidFortnight):
		BadRequest(w, "La quincena debe ser 1 o 2", nil)
	case errors.Is(err, payroll.ErrNoEmployees):
		NotFound(w, "No hay empleados activos para calcular")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "No hay planilla calculada para ese período")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "La planilla de ese período ya fue pagada")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
