package salary

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type CreateSalaryRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	BasicSalary  string `json:"basic_salary"`
	Allowances   string `json:"allowances"`
	Deductions   string `json:"deductions"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Month, monthNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a full English month name",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	for field, value := range map[string]string{
		"basic_salary": r.BasicSalary,
		"allowances":   r.Allowances,
		"deductions":   r.Deductions,
	} {
		if validator.IsEmpty(value) {
			continue
		}
		if _, err := decimal.NewFromString(value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSalaryRequest struct {
	BasicSalary *string `json:"basic_salary,omitempty"`
	Allowances  *string `json:"allowances,omitempty"`
	Deductions  *string `json:"deductions,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"basic_salary": r.BasicSalary,
		"allowances":   r.Allowances,
		"deductions":   r.Deductions,
	} {
		if value == nil {
			continue
		}
		if _, err := decimal.NewFromString(*value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	BasicSalary  string `json:"basic_salary"`
	Allowances   string `json:"allowances"`
	Deductions   string `json:"deductions"`
	NetSalary    string `json:"net_salary"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Month:        rec.Month,
		Year:         rec.Year,
		BasicSalary:  rec.BasicSalary.String(),
		Allowances:   rec.Allowances.String(),
		Deductions:   rec.Deductions.String(),
		NetSalary:    rec.NetSalary.String(),
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    rec.UpdatedAt.Format(time.RFC3339),
	}
}
