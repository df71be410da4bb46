package dashboard

import "github.com/emsuite/ems-backend-go/internal/domain/employee"

// ========== SUMMARY STATS ==========

// StatsResponse is the admin dashboard headline card data.
type StatsResponse struct {
	TotalEmployees   int64       `json:"total_employees"`
	TotalDepartments int64       `json:"total_departments"`
	MonthlySalary    string      `json:"monthly_salary"`
	Leaves           LeaveCounts `json:"leaves"`
}

// LeaveCounts breaks applications down by status; Applied is the total.
type LeaveCounts struct {
	Applied  int64 `json:"applied"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}

// ========== ANALYTICS ==========

type AnalyticsResponse struct {
	EmployeeOverview    EmployeeOverview    `json:"employee_overview"`
	AttendanceAnalytics AttendanceAnalytics `json:"attendance_analytics"`
	LeaveAnalytics      LeaveAnalytics      `json:"leave_analytics"`
}

type EmployeeOverview struct {
	TotalEmployees      int64                       `json:"total_employees"`
	DepartmentWiseCount map[string]int64            `json:"department_wise_count"`
	RecentlyAdded       []employee.EmployeeResponse `json:"recently_added"`
}

type AttendanceAnalytics struct {
	MonthlySummary   AttendanceSummary `json:"monthly_attendance_summary"`
	AttendanceTrends []DayTrend        `json:"attendance_trends"`
	FrequentAbsences []AbsenceRank     `json:"frequent_absences"`
}

type AttendanceSummary struct {
	Present   int64 `json:"present"`
	Absent    int64 `json:"absent"`
	Late      int64 `json:"late"`
	EarlyExit int64 `json:"early_exit"`
}

// DayTrend is one day of the 7-day present/absent trend line.
type DayTrend struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}

type AbsenceRank struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	AbsenceCount int64  `json:"absence_count"`
}

type LeaveAnalytics struct {
	StatusOverview LeaveStatusOverview `json:"leave_status_overview"`
	LeaveTrends    []MonthTrend        `json:"leave_trends"`
}

type LeaveStatusOverview struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// MonthTrend is one month of the 6-month submission trend, "Jan".."Dec".
type MonthTrend struct {
	Month  string `json:"month"`
	Leaves int64  `json:"leaves"`
}
