package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/project"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `id, project_code, title, description, assigned_to,
	assigned_to_name, deadline, status, created_at, updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.ProjectCode, &p.Title, &p.Description, &p.AssignedTo,
		&p.AssignedToName, &p.Deadline, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (
			id, project_code, title, description, assigned_to,
			assigned_to_name, deadline, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	p.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		p.ID, p.ProjectCode, p.Title, p.Description, p.AssignedTo,
		p.AssignedToName, p.Deadline, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE project_code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *projectRepositoryImpl) List(ctx context.Context, assignedTo string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM projects`, projectColumns)
	args := []interface{}{}

	if assignedTo != "" {
		query += ` WHERE assigned_to = $1`
		args = append(args, assignedTo)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Title != nil {
		updates = append(updates, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.AssignedTo != nil {
		updates = append(updates, fmt.Sprintf("assigned_to = $%d", argIdx))
		args = append(args, *req.AssignedTo)
		argIdx++
	}
	if req.AssignedToName != nil {
		updates = append(updates, fmt.Sprintf("assigned_to_name = $%d", argIdx))
		args = append(args, *req.AssignedToName)
		argIdx++
	}
	if req.Deadline != nil {
		updates = append(updates, fmt.Sprintf("deadline = $%d", argIdx))
		deadline, _ := time.Parse("2006-01-02", *req.Deadline)
		args = append(args, deadline)
		argIdx++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	if len(updates) == 0 {
		return project.Project{}, fmt.Errorf("no updatable fields provided for project update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	sql := "UPDATE projects SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIdx, projectColumns)

	p, err := scanProject(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
