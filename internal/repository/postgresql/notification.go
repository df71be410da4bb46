package postgresql

import (
	"context"

	"github.com/emsuite/ems-backend-go/internal/domain/notification"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

type readStateRepositoryImpl struct {
	db *database.DB
}

func NewReadStateRepository(db *database.DB) notification.ReadStateRepository {
	return &readStateRepositoryImpl{db: db}
}

func (r *readStateRepositoryImpl) MarkRead(ctx context.Context, id string, read bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_reads (id, read, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET read = EXCLUDED.read, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, id, read)
	return err
}

func (r *readStateRepositoryImpl) ReadIDs(ctx context.Context) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, read FROM notification_reads`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reads := make(map[string]bool)
	for rows.Next() {
		var id string
		var read bool
		if err := rows.Scan(&id, &read); err != nil {
			return nil, err
		}
		reads[id] = read
	}
	return reads, rows.Err()
}
