package leave

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !IsValidType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, personal, emergency, maternity, paternity",
		})
	}

	var startDate, endDate time.Time
	var startOK, endOK bool

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if startDate, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if endDate, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed calendar dates. Validate must have passed.
func (r *SubmitLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type DecideRequest struct {
	Decision string `json:"decision"`
}

func (r *DecideRequest) Validate() error {
	if r.Decision != string(StatusApproved) && r.Decision != string(StatusRejected) {
		return ErrInvalidDecision
	}
	return nil
}

// ApplicationResponse is the wire shape of a leave application. The legacy
// identifier is exposed as "legacy_id" for clients still keyed on it.
type ApplicationResponse struct {
	ID           string  `json:"id"`
	LegacyID     *string `json:"legacy_id,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
}

func ToResponse(a Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:           a.ID,
		LegacyID:     a.LegacyID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		LeaveType:    string(a.Type),
		StartDate:    a.StartDate.Format("2006-01-02"),
		EndDate:      a.EndDate.Format("2006-01-02"),
		Reason:       a.Reason,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
	if a.ProcessedAt != nil {
		processed := a.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}
