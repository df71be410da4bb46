package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/dashboard"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

const (
	recentEmployeeWindowDays = 30
	recentEmployeeLimit      = 5
	trendDays                = 7
	absenceRankLimit         = 5
	leaveTrendMonths         = 6
)

var twelve = decimal.NewFromInt(12)

type Service struct {
	dashboard.DashboardRepository

	now func() time.Time
}

func NewService(dashboardRepository dashboard.DashboardRepository) *Service {
	return &Service{
		DashboardRepository: dashboardRepository,
		now:                 time.Now,
	}
}

// Stats assembles the headline cards. Monthly payroll prefers the salary
// ledger for the current month; with no slips recorded yet it estimates
// one twelfth of the registry's annual salaries.
func (s *Service) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := s.now()

	totalEmployees, err := s.CountEmployees(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	totalDepartments, err := s.CountDepartments(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count departments: %w", err)
	}

	monthly, err := s.MonthlyNetSalaryTotal(ctx, now.Month().String(), now.Year())
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to sum monthly salaries: %w", err)
	}
	if monthly.IsZero() {
		annual, err := s.AnnualEmployeeSalaryTotal(ctx)
		if err != nil {
			return dashboard.StatsResponse{}, fmt.Errorf("failed to sum annual salaries: %w", err)
		}
		monthly = annual.Div(twelve).Round(2)
	}

	leaves, err := s.LeaveStatusCounts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count leaves: %w", err)
	}

	return dashboard.StatsResponse{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		MonthlySalary:    monthly.String(),
		Leaves:           leaves,
	}, nil
}

func (s *Service) Analytics(ctx context.Context) (dashboard.AnalyticsResponse, error) {
	now := s.now()

	overview, err := s.employeeOverview(ctx, now)
	if err != nil {
		return dashboard.AnalyticsResponse{}, err
	}

	attendanceAnalytics, err := s.attendanceAnalytics(ctx, now)
	if err != nil {
		return dashboard.AnalyticsResponse{}, err
	}

	leaveAnalytics, err := s.leaveAnalytics(ctx, now)
	if err != nil {
		return dashboard.AnalyticsResponse{}, err
	}

	return dashboard.AnalyticsResponse{
		EmployeeOverview:    overview,
		AttendanceAnalytics: attendanceAnalytics,
		LeaveAnalytics:      leaveAnalytics,
	}, nil
}

func (s *Service) employeeOverview(ctx context.Context, now time.Time) (dashboard.EmployeeOverview, error) {
	total, err := s.CountEmployees(ctx)
	if err != nil {
		return dashboard.EmployeeOverview{}, fmt.Errorf("failed to count employees: %w", err)
	}

	byDepartment, err := s.DepartmentWiseCounts(ctx)
	if err != nil {
		return dashboard.EmployeeOverview{}, fmt.Errorf("failed to count employees by department: %w", err)
	}

	since := now.AddDate(0, 0, -recentEmployeeWindowDays)
	recent, err := s.RecentEmployees(ctx, since, recentEmployeeLimit)
	if err != nil {
		return dashboard.EmployeeOverview{}, fmt.Errorf("failed to load recent employees: %w", err)
	}

	recentResponses := make([]employee.EmployeeResponse, 0, len(recent))
	for _, e := range recent {
		recentResponses = append(recentResponses, employee.ToResponse(e))
	}

	return dashboard.EmployeeOverview{
		TotalEmployees:      total,
		DepartmentWiseCount: byDepartment,
		RecentlyAdded:       recentResponses,
	}, nil
}

func (s *Service) attendanceAnalytics(ctx context.Context, now time.Time) (dashboard.AttendanceAnalytics, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	summary, err := s.MonthlyAttendanceSummary(ctx, monthStart)
	if err != nil {
		return dashboard.AttendanceAnalytics{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	trends := make([]dashboard.DayTrend, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		present, absent, err := s.DailyAttendanceCounts(ctx, date)
		if err != nil {
			return dashboard.AttendanceAnalytics{}, fmt.Errorf("failed to count attendance for %s: %w", date, err)
		}
		trends = append(trends, dashboard.DayTrend{Date: date, Present: present, Absent: absent})
	}

	since := now.AddDate(0, 0, -recentEmployeeWindowDays)
	absences, err := s.FrequentAbsences(ctx, since, absenceRankLimit)
	if err != nil {
		return dashboard.AttendanceAnalytics{}, fmt.Errorf("failed to rank absences: %w", err)
	}

	return dashboard.AttendanceAnalytics{
		MonthlySummary:   summary,
		AttendanceTrends: trends,
		FrequentAbsences: absences,
	}, nil
}

func (s *Service) leaveAnalytics(ctx context.Context, now time.Time) (dashboard.LeaveAnalytics, error) {
	counts, err := s.LeaveStatusCounts(ctx)
	if err != nil {
		return dashboard.LeaveAnalytics{}, fmt.Errorf("failed to count leaves: %w", err)
	}

	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(leaveTrendMonths - 1), 0)
	buckets, err := s.MonthlyLeaveTrend(ctx, since)
	if err != nil {
		return dashboard.LeaveAnalytics{}, fmt.Errorf("failed to load leave trend: %w", err)
	}

	byMonth := make(map[int]int64, len(buckets))
	for _, b := range buckets {
		byMonth[b.Year*100+b.Month] = b.Count
	}

	// every month gets a point, zero months included
	trends := make([]dashboard.MonthTrend, 0, leaveTrendMonths)
	for i := 0; i < leaveTrendMonths; i++ {
		m := since.AddDate(0, i, 0)
		trends = append(trends, dashboard.MonthTrend{
			Month:  m.Month().String()[:3],
			Leaves: byMonth[m.Year()*100+int(m.Month())],
		})
	}

	return dashboard.LeaveAnalytics{
		StatusOverview: dashboard.LeaveStatusOverview{
			Pending:  counts.Pending,
			Approved: counts.Approved,
			Rejected: counts.Rejected,
		},
		LeaveTrends: trends,
	}, nil
}
