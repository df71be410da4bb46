package department

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
)

type Service struct {
	department.DepartmentRepository
}

func NewService(departmentRepository department.DepartmentRepository) *Service {
	return &Service{DepartmentRepository: departmentRepository}
}

func (s *Service) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	if err := s.checkNameFree(ctx, req.Name, ""); err != nil {
		return department.Department{}, err
	}

	dept := department.Department{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	created, err := s.DepartmentRepository.Create(ctx, dept)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]department.Department, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *Service) Get(ctx context.Context, id string) (department.Department, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return dept, nil
}

func (s *Service) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	if req.Name != nil {
		if err := s.checkNameFree(ctx, *req.Name, id); err != nil {
			return department.Department{}, err
		}
	}

	if err := s.DepartmentRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// checkNameFree enforces case-insensitive name uniqueness, ignoring the
// department being updated.
func (s *Service) checkNameFree(ctx context.Context, name, excludeID string) error {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check department name: %w", err)
	}
	for _, d := range departments {
		if d.ID != excludeID && strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return department.ErrDepartmentExists
		}
	}
	return nil
}
