package attendance

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	Action       string `json:"action"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
}

const (
	ActionPunchIn  = "punch_in"
	ActionPunchOut = "punch_out"
)

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != ActionPunchIn && r.Action != ActionPunchOut {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be 'punch_in' or 'punch_out'",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Department   string   `json:"department"`
	Date         string   `json:"date"`
	PunchIn      string   `json:"punch_in"`
	PunchOut     *string  `json:"punch_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Department:   rec.Department,
		Date:         rec.Date,
		PunchIn:      rec.PunchIn,
		PunchOut:     rec.PunchOut,
		TotalHours:   rec.TotalHours,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    rec.UpdatedAt.Format(time.RFC3339),
	}
}
