package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Type is the closed set of leave categories.
type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypePersonal  Type = "personal"
	TypeEmergency Type = "emergency"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
)

// AllTypes returns all valid leave categories.
func AllTypes() []Type {
	return []Type{
		TypeAnnual,
		TypeSick,
		TypePersonal,
		TypeEmergency,
		TypeMaternity,
		TypePaternity,
	}
}

func IsValidType(t string) bool {
	for _, known := range AllTypes() {
		if Type(t) == known {
			return true
		}
	}
	return false
}

// Application is a single employee's request for time off, with lifecycle
// status. ID is the canonical store-assigned key; LegacyID is a secondary
// identifier present on historical records written before identifiers were
// normalized. New rows always get LegacyID backfilled to the canonical id so
// either lookup path lands on the same record.
type Application struct {
	ID           string
	LegacyID     *string
	EmployeeID   string
	EmployeeName string
	Type         Type
	StartDate    time.Time // calendar date, midnight UTC
	EndDate      time.Time
	Reason       string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProcessedAt  *time.Time // set exactly once, when leaving pending
}

// Overlaps reports whether [a.StartDate, a.EndDate] shares at least one
// calendar day with [start, end]. Bounds are inclusive.
func (a Application) Overlaps(start, end time.Time) bool {
	return !a.StartDate.After(end) && !a.EndDate.Before(start)
}
