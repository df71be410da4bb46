package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAttendanceAnomaly NotificationType = "attendance_anomaly"
	TypeLeaveRequest      NotificationType = "leave_request"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Notification is one item of the admin feed. The feed itself is derived on
// read from the attendance and leave collections; only the read flag is
// persisted, keyed by the source record's id.
type Notification struct {
	ID           string           `json:"id"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	Priority     Priority         `json:"priority"`
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// rank orders priorities for feed sorting, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}
