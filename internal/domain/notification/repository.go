package notification

import "context"

// ReadStateRepository persists which feed items an admin has dismissed.
type ReadStateRepository interface {
	MarkRead(ctx context.Context, id string, read bool) error
	ReadIDs(ctx context.Context) (map[string]bool, error)
}

type MarkReadRequest struct {
	NotificationID string `json:"notification_id"`
	Read           bool   `json:"read"`
}
