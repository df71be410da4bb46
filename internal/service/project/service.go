package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/project"
)

type Service struct {
	project.ProjectRepository
}

func NewService(projectRepository project.ProjectRepository) *Service {
	return &Service{ProjectRepository: projectRepository}
}

func (s *Service) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	exists, err := s.ProjectRepository.ExistsByCode(ctx, req.ProjectCode)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to check project code: %w", err)
	}
	if exists {
		return project.Project{}, project.ErrProjectCodeExists
	}

	p := project.Project{
		ProjectCode:    req.ProjectCode,
		Title:          req.Title,
		Description:    req.Description,
		AssignedTo:     req.AssignedTo,
		AssignedToName: req.AssignedToName,
		Status:         project.StatusPlanned,
	}
	if req.Status != "" {
		p.Status = project.Status(req.Status)
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return project.Project{}, fmt.Errorf("failed to parse deadline: %w", err)
		}
		p.Deadline = &deadline
	}

	created, err := s.ProjectRepository.Create(ctx, p)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (project.Project, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// List returns projects, newest first. A non-empty assignedTo filters to one
// employee's projects.
func (s *Service) List(ctx context.Context, assignedTo string) ([]project.Project, error) {
	projects, err := s.ProjectRepository.List(ctx, assignedTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *Service) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	updated, err := s.ProjectRepository.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.ProjectRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
