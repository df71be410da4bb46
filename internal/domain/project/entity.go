package project

import "time"

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

// Project is a unit of work assigned to one employee. ProjectCode is the
// business identifier (PRJ001 and so on), unique across projects.
type Project struct {
	ID             string
	ProjectCode    string
	Title          string
	Description    string
	AssignedTo     string
	AssignedToName string
	Deadline       *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
