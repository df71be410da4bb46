package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
)

// lateThresholdHour marks punch-ins at or after this wall-clock hour as Late.
const lateThresholdHour = 9

// fullDayHours is the minimum worked span; shorter days become Early Exit.
const fullDayHours = 8.0

type Service struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		now:                  time.Now,
	}
}

// Punch handles both directions of the daily punch log. One record per
// employee per day: a second punch in is rejected, as is a punch out with no
// open record.
func (s *Service) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.Record{}, employee.ErrEmployeeNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	// Prefer the registry's name and department over whatever the client sent.
	if emp.Name != "" {
		req.EmployeeName = emp.Name
	}
	if emp.Department != "" {
		req.Department = emp.Department
	}

	if req.Action == attendance.ActionPunchIn {
		return s.punchIn(ctx, req)
	}
	return s.punchOut(ctx, req)
}

func (s *Service) punchIn(ctx context.Context, req attendance.PunchRequest) (attendance.Record, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err == nil {
		if existing.PunchOut != nil {
			return attendance.Record{}, attendance.ErrAlreadyPunchedOut
		}
		return attendance.Record{}, attendance.ErrAlreadyPunchedIn
	}
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Record{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	status := attendance.StatusPresent
	if now.Hour() >= lateThresholdHour {
		status = attendance.StatusLate
	}

	rec := attendance.Record{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		Date:         today,
		PunchIn:      now.Format("15:04"),
		Status:       status,
	}

	created, err := s.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to record punch in: %w", err)
	}
	return created, nil
}

func (s *Service) punchOut(ctx context.Context, req attendance.PunchRequest) (attendance.Record, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	open, err := s.AttendanceRepository.GetOpenRecord(ctx, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenRecord) {
			return attendance.Record{}, attendance.ErrNoOpenRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to find open punch record: %w", err)
	}

	punchIn, err := time.Parse("15:04", open.PunchIn)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to parse punch in time: %w", err)
	}

	punchOut := now.Format("15:04")
	outClock := time.Date(0, 1, 1, now.Hour(), now.Minute(), 0, 0, time.UTC)
	totalHours := outClock.Sub(punchIn).Hours()
	if totalHours < 0 {
		totalHours = 0
	}

	status := open.Status
	if totalHours < fullDayHours {
		status = attendance.StatusEarlyExit
	}

	closed, err := s.AttendanceRepository.ClosePunch(ctx, open.ID, punchOut, totalHours, status)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to record punch out: %w", err)
	}
	return closed, nil
}

// List returns punch records, newest first. An empty employeeID lists all.
func (s *Service) List(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	records, err := s.AttendanceRepository.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}
