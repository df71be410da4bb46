package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	Create(ctx context.Context, dept Department) (Department, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id string) error
}
