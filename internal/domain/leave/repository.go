package leave

import (
	"context"
	"time"
)

// ApplicationRepository - interface for the leave_applications table
type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)

	// Resolve looks up an application by canonical id first, then by the
	// legacy alias field, then by string equality against the stringified
	// canonical id. Returns ErrLeaveNotFound when nothing matches.
	Resolve(ctx context.Context, identifier string) (Application, error)

	// ListByEmployeeAndStatus returns applications for one employee whose
	// status is in statuses; an empty statuses slice means all.
	ListByEmployeeAndStatus(ctx context.Context, employeeID string, statuses []Status) ([]Application, error)

	List(ctx context.Context, employeeID string) ([]Application, error)
	ListByStatus(ctx context.Context, status Status) ([]Application, error)

	UpdateStatus(ctx context.Context, id string, status Status, processedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
