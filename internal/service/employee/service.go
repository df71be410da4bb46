package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// defaultPassword seeds new accounts; employees are expected to change it.
const defaultPassword = "employee123"

type Service struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewService(db *database.DB, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{db: db, EmployeeRepository: employeeRepository}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	salary := decimal.Zero
	if req.Salary != "" {
		salary, err = decimal.NewFromString(req.Salary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse salary: %w", err)
		}
	}

	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         "employee",
		Department:   req.Department,
		Position:     req.Position,
		Salary:       salary,
		ImageURL:     req.ImageURL,
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		emp.DateOfBirth = &dob
	}

	// uniqueness check and insert share one transaction
	var created employee.Employee
	err = s.withTx(ctx, func(txCtx context.Context) error {
		exists, err := s.EmployeeRepository.ExistsByCodeOrEmail(txCtx, req.EmployeeCode, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check employee uniqueness: %w", err)
		}
		if exists {
			if _, err := s.EmployeeRepository.GetByEmployeeCode(txCtx, req.EmployeeCode); err == nil {
				return employee.ErrEmployeeCodeExists
			}
			return employee.ErrEmailExists
		}

		created, err = s.EmployeeRepository.Create(txCtx, emp)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// withTx runs fn transactionally when a pool is wired in; unit tests on the
// in-memory repository run fn directly.
func (s *Service) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

// Get accepts either the canonical id or the employee code.
func (s *Service) Get(ctx context.Context, identifier string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, identifier)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp, err = s.EmployeeRepository.GetByEmployeeCode(ctx, identifier)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return emp, nil
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *Service) Update(ctx context.Context, identifier string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.Get(ctx, identifier)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.Email != nil && *req.Email != emp.Email {
		if _, err := s.EmployeeRepository.GetByEmail(ctx, *req.Email); err == nil {
			return employee.Employee{}, employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
	}

	if err := s.EmployeeRepository.Update(ctx, emp.ID, req); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to reload employee: %w", err)
	}
	return updated, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func (s *Service) Delete(ctx context.Context, identifier string) error {
	emp, err := s.Get(ctx, identifier)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.Delete(ctx, emp.ID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
