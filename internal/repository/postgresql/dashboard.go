package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/dashboard"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

func (r *dashboardRepositoryImpl) CountDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count)
	return count, err
}

func (r *dashboardRepositoryImpl) MonthlyNetSalaryTotal(ctx context.Context, month string, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(net_salary), 0)
		FROM salaries
		WHERE month = $1 AND year = $2
	`, month, year).Scan(&total)
	return total, err
}

func (r *dashboardRepositoryImpl) AnnualEmployeeSalaryTotal(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(salary), 0) FROM employees`).Scan(&total)
	return total, err
}

func (r *dashboardRepositoryImpl) LeaveStatusCounts(ctx context.Context) (dashboard.LeaveCounts, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM leave_applications GROUP BY status`)
	if err != nil {
		return dashboard.LeaveCounts{}, err
	}
	defer rows.Close()

	var counts dashboard.LeaveCounts
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return dashboard.LeaveCounts{}, err
		}
		switch status {
		case "approved":
			counts.Approved = n
		case "pending":
			counts.Pending = n
		case "rejected":
			counts.Rejected = n
		}
		counts.Applied += n
	}
	return counts, rows.Err()
}

func (r *dashboardRepositoryImpl) DepartmentWiseCounts(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		WHERE department <> ''
		GROUP BY department
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var department string
		var n int64
		if err := rows.Scan(&department, &n); err != nil {
			return nil, err
		}
		counts[department] = n
	}
	return counts, rows.Err()
}

func (r *dashboardRepositoryImpl) RecentEmployees(ctx context.Context, since time.Time, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2
	`, employeeColumns)

	rows, err := q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *dashboardRepositoryImpl) MonthlyAttendanceSummary(ctx context.Context, since time.Time) (dashboard.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT status, COUNT(*)
		FROM attendance
		WHERE att_date >= $1::date
		GROUP BY status
	`, since.Format("2006-01-02"))
	if err != nil {
		return dashboard.AttendanceSummary{}, err
	}
	defer rows.Close()

	var summary dashboard.AttendanceSummary
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return dashboard.AttendanceSummary{}, err
		}
		switch status {
		case "Present":
			summary.Present = n
		case "Absent":
			summary.Absent = n
		case "Late":
			summary.Late = n
		case "Early Exit":
			summary.EarlyExit = n
		}
	}
	return summary, rows.Err()
}

func (r *dashboardRepositoryImpl) DailyAttendanceCounts(ctx context.Context, date string) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	var present, absent int64
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('Present', 'Late', 'Early Exit')),
			COUNT(*) FILTER (WHERE status = 'Absent')
		FROM attendance
		WHERE att_date = $1::date
	`, date).Scan(&present, &absent)
	return present, absent, err
}

func (r *dashboardRepositoryImpl) FrequentAbsences(ctx context.Context, since time.Time, limit int) ([]dashboard.AbsenceRank, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id, employee_name, COUNT(*) AS absences
		FROM attendance
		WHERE status = 'Absent' AND att_date >= $1::date
		GROUP BY employee_id, employee_name
		ORDER BY absences DESC
		LIMIT $2
	`, since.Format("2006-01-02"), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []dashboard.AbsenceRank
	for rows.Next() {
		var rank dashboard.AbsenceRank
		if err := rows.Scan(&rank.EmployeeID, &rank.EmployeeName, &rank.AbsenceCount); err != nil {
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}

func (r *dashboardRepositoryImpl) MonthlyLeaveTrend(ctx context.Context, since time.Time) ([]dashboard.MonthBucket, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT
			EXTRACT(YEAR FROM created_at)::int AS yr,
			EXTRACT(MONTH FROM created_at)::int AS mo,
			COUNT(*)
		FROM leave_applications
		WHERE created_at >= $1
		GROUP BY yr, mo
		ORDER BY yr, mo
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []dashboard.MonthBucket
	for rows.Next() {
		var b dashboard.MonthBucket
		if err := rows.Scan(&b.Year, &b.Month, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
