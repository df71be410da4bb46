package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.ApplicationRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, legacy_id, employee_id, employee_name, leave_type,
	start_date, end_date, reason, status, created_at, updated_at, processed_at`

func scanApplication(row pgx.Row) (leave.Application, error) {
	var a leave.Application
	err := row.Scan(
		&a.ID, &a.LegacyID, &a.EmployeeID, &a.EmployeeName, &a.Type,
		&a.StartDate, &a.EndDate, &a.Reason, &a.Status,
		&a.CreatedAt, &a.UpdatedAt, &a.ProcessedAt,
	)
	return a, err
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	// Identifiers are normalized at write time: the legacy alias is set to
	// the canonical id so either lookup path lands on this row.
	app.ID = uuid.NewString()
	legacy := app.ID
	app.LegacyID = &legacy

	query := `
		INSERT INTO leave_applications (
			id, legacy_id, employee_id, employee_name, leave_type,
			start_date, end_date, reason, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.ID, app.LegacyID, app.EmployeeID, app.EmployeeName, app.Type,
		app.StartDate, app.EndDate, app.Reason, app.Status,
	).Scan(&app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		return leave.Application{}, err
	}

	return app, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_applications WHERE id = $1`, leaveColumns)

	a, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrLeaveNotFound
		}
		return leave.Application{}, err
	}
	return a, nil
}

// Resolve walks the deterministic identifier fallback chain: canonical id,
// then legacy alias, then case-insensitive match against the stringified
// canonical id. Historical rows were written with mixed identifier formats;
// new rows carry both fields, so the first probe wins for them.
func (r *leaveRepositoryImpl) Resolve(ctx context.Context, identifier string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	probes := []string{
		fmt.Sprintf(`SELECT %s FROM leave_applications WHERE id = $1`, leaveColumns),
		fmt.Sprintf(`SELECT %s FROM leave_applications WHERE legacy_id = $1`, leaveColumns),
		fmt.Sprintf(`SELECT %s FROM leave_applications WHERE LOWER(id) = LOWER($1)`, leaveColumns),
	}

	for _, probe := range probes {
		a, err := scanApplication(q.QueryRow(ctx, probe, identifier))
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, err
		}
	}

	return leave.Application{}, leave.ErrLeaveNotFound
}

func (r *leaveRepositoryImpl) ListByEmployeeAndStatus(ctx context.Context, employeeID string, statuses []leave.Status) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_applications WHERE employee_id = $1`, leaveColumns)
	args := []interface{}{employeeID}

	if len(statuses) > 0 {
		query += ` AND status = ANY($2)`
		strs := make([]string, len(statuses))
		for i, s := range statuses {
			strs[i] = string(s)
		}
		args = append(args, strs)
	}

	query += ` ORDER BY start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *leaveRepositoryImpl) List(ctx context.Context, employeeID string) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_applications`, leaveColumns)
	args := []interface{}{}

	if employeeID != "" {
		query += ` WHERE employee_id = $1`
		args = append(args, employeeID)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *leaveRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_applications WHERE status = $1 ORDER BY created_at DESC`, leaveColumns)

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]leave.Application, error) {
	var apps []leave.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, processedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $2, processed_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, processedAt)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
