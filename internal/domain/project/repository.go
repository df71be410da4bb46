package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, assignedTo string) ([]Project, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error
}
