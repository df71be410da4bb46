package attendance

import "time"

type Status string

const (
	StatusPresent   Status = "Present"
	StatusLate      Status = "Late"
	StatusAbsent    Status = "Absent"
	StatusEarlyExit Status = "Early Exit"
)

// Record is one employee's punch log for one calendar day. PunchIn/PunchOut
// are wall-clock "HH:MM" strings, matching what the punch terminals send.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string
	Date         string // "YYYY-MM-DD"
	PunchIn      string
	PunchOut     *string
	TotalHours   *float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
