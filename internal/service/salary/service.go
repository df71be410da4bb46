package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

type Service struct {
	salary.SalaryRepository
	employee.EmployeeRepository
}

func NewService(salaryRepository salary.SalaryRepository, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		SalaryRepository:   salaryRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *Service) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.Record, error) {
	if err := req.Validate(); err != nil {
		return salary.Record{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.Record{}, employee.ErrEmployeeNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	rec := salary.Record{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Month:        req.Month,
		Year:         req.Year,
		BasicSalary:  parseAmount(req.BasicSalary),
		Allowances:   parseAmount(req.Allowances),
		Deductions:   parseAmount(req.Deductions),
	}
	rec.NetSalary = rec.BasicSalary.Add(rec.Allowances).Sub(rec.Deductions)

	created, err := s.SalaryRepository.Create(ctx, rec)
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to create salary record: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (salary.Record, error) {
	rec, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return rec, nil
}

// List returns salary records, newest first. An empty employeeID lists all.
func (s *Service) List(ctx context.Context, employeeID string) ([]salary.Record, error) {
	records, err := s.SalaryRepository.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	return records, nil
}

func (s *Service) Update(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.Record, error) {
	if err := req.Validate(); err != nil {
		return salary.Record{}, err
	}

	updated, err := s.SalaryRepository.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to update salary record: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.SalaryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.ErrSalaryNotFound
		}
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	return nil
}

// parseAmount tolerates empty strings; Validate has already rejected
// malformed numbers.
func parseAmount(v string) decimal.Decimal {
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
