package salary

import "context"

type SalaryRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, id string, req UpdateSalaryRequest) (Record, error)
	Delete(ctx context.Context, id string) error
}
