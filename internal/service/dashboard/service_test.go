package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/dashboard"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	employees      int64
	departments    int64
	monthlyTotal   decimal.Decimal
	annualTotal    decimal.Decimal
	leaveCounts    dashboard.LeaveCounts
	deptCounts     map[string]int64
	recent         []employee.Employee
	summary        dashboard.AttendanceSummary
	dailyPresent   int64
	dailyAbsent    int64
	absences       []dashboard.AbsenceRank
	leaveBuckets   []dashboard.MonthBucket
	monthRequested string
}

func (s *stubDashboardRepo) CountEmployees(_ context.Context) (int64, error) {
	return s.employees, nil
}

func (s *stubDashboardRepo) CountDepartments(_ context.Context) (int64, error) {
	return s.departments, nil
}

func (s *stubDashboardRepo) MonthlyNetSalaryTotal(_ context.Context, month string, year int) (decimal.Decimal, error) {
	s.monthRequested = month
	return s.monthlyTotal, nil
}

func (s *stubDashboardRepo) AnnualEmployeeSalaryTotal(_ context.Context) (decimal.Decimal, error) {
	return s.annualTotal, nil
}

func (s *stubDashboardRepo) LeaveStatusCounts(_ context.Context) (dashboard.LeaveCounts, error) {
	return s.leaveCounts, nil
}

func (s *stubDashboardRepo) DepartmentWiseCounts(_ context.Context) (map[string]int64, error) {
	return s.deptCounts, nil
}

func (s *stubDashboardRepo) RecentEmployees(_ context.Context, since time.Time, limit int) ([]employee.Employee, error) {
	return s.recent, nil
}

func (s *stubDashboardRepo) MonthlyAttendanceSummary(_ context.Context, since time.Time) (dashboard.AttendanceSummary, error) {
	return s.summary, nil
}

func (s *stubDashboardRepo) DailyAttendanceCounts(_ context.Context, date string) (int64, int64, error) {
	return s.dailyPresent, s.dailyAbsent, nil
}

func (s *stubDashboardRepo) FrequentAbsences(_ context.Context, since time.Time, limit int) ([]dashboard.AbsenceRank, error) {
	return s.absences, nil
}

func (s *stubDashboardRepo) MonthlyLeaveTrend(_ context.Context, since time.Time) ([]dashboard.MonthBucket, error) {
	return s.leaveBuckets, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo *stubDashboardRepo) *Service {
	svc := NewService(repo)
	svc.now = fixedNow
	return svc
}

func TestStatsUsesMonthlyLedger(t *testing.T) {
	t.Parallel()
	repo := &stubDashboardRepo{
		employees:    10,
		departments:  3,
		monthlyTotal: decimal.NewFromInt(50000),
		annualTotal:  decimal.NewFromInt(999999),
		leaveCounts:  dashboard.LeaveCounts{Applied: 5, Approved: 2, Pending: 2, Rejected: 1},
	}
	svc := newTestService(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalEmployees)
	assert.Equal(t, int64(3), stats.TotalDepartments)
	assert.Equal(t, "50000", stats.MonthlySalary)
	assert.Equal(t, "February", repo.monthRequested)
	assert.Equal(t, int64(2), stats.Leaves.Pending)
}

func TestStatsFallsBackToAnnualEstimate(t *testing.T) {
	t.Parallel()
	repo := &stubDashboardRepo{
		monthlyTotal: decimal.Zero,
		annualTotal:  decimal.NewFromInt(120000),
	}
	svc := newTestService(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10000", stats.MonthlySalary)
}

func TestAnalyticsLeaveTrendFillsSixMonths(t *testing.T) {
	t.Parallel()
	repo := &stubDashboardRepo{
		deptCounts: map[string]int64{"Engineering": 4},
		leaveBuckets: []dashboard.MonthBucket{
			{Year: 2023, Month: 12, Count: 2},
			{Year: 2024, Month: 2, Count: 5},
		},
	}
	svc := newTestService(repo)

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	trends := analytics.LeaveAnalytics.LeaveTrends
	require.Len(t, trends, 6)
	assert.Equal(t, "Sep", trends[0].Month)
	assert.Equal(t, "Dec", trends[3].Month)
	assert.Equal(t, int64(2), trends[3].Leaves)
	assert.Equal(t, "Feb", trends[5].Month)
	assert.Equal(t, int64(5), trends[5].Leaves)
	assert.Equal(t, int64(0), trends[4].Leaves)
}

func TestAnalyticsSevenDayTrend(t *testing.T) {
	t.Parallel()
	repo := &stubDashboardRepo{dailyPresent: 8, dailyAbsent: 2}
	svc := newTestService(repo)

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	trends := analytics.AttendanceAnalytics.AttendanceTrends
	require.Len(t, trends, 7)
	assert.Equal(t, "2024-02-09", trends[0].Date)
	assert.Equal(t, "2024-02-15", trends[6].Date)
	for _, day := range trends {
		assert.Equal(t, int64(8), day.Present)
		assert.Equal(t, int64(2), day.Absent)
	}
}
