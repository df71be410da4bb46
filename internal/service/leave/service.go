package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
)

// storeTimeout bounds the store calls of one operation. A stalled pool
// surfaces as ErrPersistence instead of hanging the request.
const storeTimeout = 5 * time.Second

type Service struct {
	leave.ApplicationRepository
	employee.EmployeeRepository
}

func NewService(applicationRepository leave.ApplicationRepository, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		ApplicationRepository: applicationRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// Submit validates the request, checks that the employee exists and that the
// requested range does not overlap a pending or approved application, then
// records the application as pending.
//
// The overlap check and the insert are two store calls; two racing submits
// can both pass the check. Admin review catches the duplicate downstream.
func (s *Service) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.Application, error) {
	if err := req.Validate(); err != nil {
		return leave.Application{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if _, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.Application{}, employee.ErrEmployeeNotFound
		}
		return leave.Application{}, storeErr("look up employee", err)
	}

	startDate, endDate := req.Dates()

	existing, err := s.ApplicationRepository.ListByEmployeeAndStatus(ctx, req.EmployeeID,
		[]leave.Status{leave.StatusPending, leave.StatusApproved})
	if err != nil {
		return leave.Application{}, storeErr("load existing applications", err)
	}

	for _, app := range existing {
		if app.Overlaps(startDate, endDate) {
			return leave.Application{}, &leave.OverlapError{Conflict: app}
		}
	}

	app := leave.Application{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         leave.Type(req.LeaveType),
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	}

	created, err := s.ApplicationRepository.Create(ctx, app)
	if err != nil {
		return leave.Application{}, storeErr("create leave application", err)
	}

	return created, nil
}

// Decide approves or rejects the application identified by identifier.
// Repeating the same decision on an already-decided record is a no-op;
// flipping the decision is ErrInvalidTransition. The status write is
// verified with a follow-up read and retried once before giving up with
// ErrPersistence.
func (s *Service) Decide(ctx context.Context, identifier string, decision string) (leave.Application, error) {
	req := leave.DecideRequest{Decision: decision}
	if err := req.Validate(); err != nil {
		return leave.Application{}, err
	}
	target := leave.Status(decision)

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	app, err := s.ApplicationRepository.Resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.Application{}, leave.ErrLeaveNotFound
		}
		return leave.Application{}, storeErr("resolve leave application", err)
	}

	if app.Status != leave.StatusPending {
		if app.Status == target {
			return app, nil
		}
		return leave.Application{}, leave.ErrInvalidTransition
	}

	processedAt := time.Now()

	updated, err := s.applyDecision(ctx, app.ID, target, processedAt)
	if err != nil {
		// one more attempt before reporting the store as unreliable
		updated, err = s.applyDecision(ctx, app.ID, target, processedAt)
		if err != nil {
			return leave.Application{}, leave.ErrPersistence
		}
	}

	return updated, nil
}

// applyDecision writes the status change and reads the row back to confirm
// the store accepted it.
func (s *Service) applyDecision(ctx context.Context, id string, status leave.Status, processedAt time.Time) (leave.Application, error) {
	if err := s.ApplicationRepository.UpdateStatus(ctx, id, status, processedAt); err != nil {
		return leave.Application{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	verified, err := s.ApplicationRepository.GetByID(ctx, id)
	if err != nil {
		return leave.Application{}, fmt.Errorf("failed to read back leave application: %w", err)
	}
	if verified.Status != status {
		return leave.Application{}, fmt.Errorf("leave status readback mismatch: got %s, want %s", verified.Status, status)
	}

	return verified, nil
}

// Delete removes the application identified by identifier regardless of its
// status.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	app, err := s.ApplicationRepository.Resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.ErrLeaveNotFound
		}
		return storeErr("resolve leave application", err)
	}

	if err := s.ApplicationRepository.Delete(ctx, app.ID); err != nil {
		return storeErr("delete leave application", err)
	}
	return nil
}

// List returns applications, newest first. An empty employeeID lists all.
func (s *Service) List(ctx context.Context, employeeID string) ([]leave.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	apps, err := s.ApplicationRepository.List(ctx, employeeID)
	if err != nil {
		return nil, storeErr("list leave applications", err)
	}
	return apps, nil
}

// Get resolves one application by any accepted identifier form.
func (s *Service) Get(ctx context.Context, identifier string) (leave.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	app, err := s.ApplicationRepository.Resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.Application{}, leave.ErrLeaveNotFound
		}
		return leave.Application{}, storeErr("resolve leave application", err)
	}
	return app, nil
}

// storeErr wraps a failed store call, collapsing a timed-out one into
// ErrPersistence.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return leave.ErrPersistence
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
