package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetOpenRecord returns the record for employee/date that has no punch
	// out yet. ErrNoOpenRecord when absent.
	GetOpenRecord(ctx context.Context, employeeID, date string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Record, error)

	List(ctx context.Context, employeeID string) ([]Record, error)
	ClosePunch(ctx context.Context, id string, punchOut string, totalHours float64, status Status) (Record, error)

	// AbsenceCounts returns per-employee Absent-day counts for dates on or
	// after since ("YYYY-MM-DD"), feeding the anomaly notification feed.
	AbsenceCounts(ctx context.Context, since string) ([]AbsenceCount, error)
}

type AbsenceCount struct {
	EmployeeID   string
	EmployeeName string
	Dates        []string
	Count        int
}
