package attendance

import (
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/validator"
)

// RegisterRequest is one kiosk event: the system decides whether it is a
// check-in or a check-out from the day's existing record.
type RegisterRequest struct {
	DNISuffix     string  `json:"last5"`
	Justification *string `json:"justification,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.DNISuffix) != 5 || !validator.IsNumeric(r.DNISuffix) {
		errs = append(errs, validator.ValidationError{Field: "last5", Message: "must be the last five digits of the DNI"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterResponse struct {
	Event   string `json:"event"` // "check_in" or "check_out"
	Time    string `json:"time"`  // "HH:MM"
	Late    bool   `json:"late"`
	Message string `json:"message"`
}

type RecordResponse struct {
	ID            string  `json:"id"`
	DNISuffix     string  `json:"last5"`
	Date          string  `json:"date"` // "YYYY-MM-DD"
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	Justification *string `json:"justification,omitempty"`
}

type ListResponse struct {
	Data  []RecordResponse `json:"data"`
	From  string           `json:"from"`
	To    string           `json:"to"`
	Total int              `json:"total"`
}
