package project

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	ProjectCode    string  `json:"project_code"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	AssignedTo     string  `json:"assigned_to"`
	AssignedToName string  `json:"assigned_to_name"`
	Deadline       *string `json:"deadline,omitempty"`
	Status         string  `json:"status"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_code",
			Message: "project_code is required",
		})
	} else if !validator.IsValidProjectCode(r.ProjectCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_code",
			Message: "project_code must look like PRJ001",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	}

	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if !validator.IsEmpty(r.Status) && !isValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of planned, in_progress, completed, on_hold",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func isValidStatus(s string) bool {
	switch Status(s) {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

type UpdateProjectRequest struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	AssignedTo     *string `json:"assigned_to,omitempty"`
	AssignedToName *string `json:"assigned_to_name,omitempty"`
	Deadline       *string `json:"deadline,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.Status != nil && !isValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of planned, in_progress, completed, on_hold",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectResponse struct {
	ID             string  `json:"id"`
	ProjectCode    string  `json:"project_code"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	AssignedTo     string  `json:"assigned_to"`
	AssignedToName string  `json:"assigned_to_name"`
	Deadline       *string `json:"deadline,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:             p.ID,
		ProjectCode:    p.ProjectCode,
		Title:          p.Title,
		Description:    p.Description,
		AssignedTo:     p.AssignedTo,
		AssignedToName: p.AssignedToName,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Deadline != nil {
		deadline := p.Deadline.Format("2006-01-02")
		resp.Deadline = &deadline
	}
	return resp
}
