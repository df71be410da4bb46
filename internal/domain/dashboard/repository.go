package dashboard

import (
	"context"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)

	// MonthlyNetSalaryTotal sums net salaries recorded for month/year.
	MonthlyNetSalaryTotal(ctx context.Context, month string, year int) (decimal.Decimal, error)
	// AnnualEmployeeSalaryTotal sums the registry's annual salaries, the
	// fallback when no salary records exist for the current month.
	AnnualEmployeeSalaryTotal(ctx context.Context) (decimal.Decimal, error)

	LeaveStatusCounts(ctx context.Context) (LeaveCounts, error)

	DepartmentWiseCounts(ctx context.Context) (map[string]int64, error)
	RecentEmployees(ctx context.Context, since time.Time, limit int) ([]employee.Employee, error)

	MonthlyAttendanceSummary(ctx context.Context, since time.Time) (AttendanceSummary, error)
	DailyAttendanceCounts(ctx context.Context, date string) (present, absent int64, err error)
	FrequentAbsences(ctx context.Context, since time.Time, limit int) ([]AbsenceRank, error)

	MonthlyLeaveTrend(ctx context.Context, since time.Time) ([]MonthBucket, error)
}

// MonthBucket is a raw year/month count scanned from the store; the service
// turns it into MonthTrend labels.
type MonthBucket struct {
	Year  int
	Month int
	Count int64
}
