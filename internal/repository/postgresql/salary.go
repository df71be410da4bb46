package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `id, employee_id, employee_name, month, year,
	basic_salary, allowances, deductions, net_salary, created_at, updated_at`

func scanSalary(row pgx.Row) (salary.Record, error) {
	var rec salary.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Month, &rec.Year,
		&rec.BasicSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *salaryRepositoryImpl) Create(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			id, employee_id, employee_name, month, year,
			basic_salary, allowances, deductions, net_salary,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	rec.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Month, rec.Year,
		rec.BasicSalary, rec.Allowances, rec.Deductions, rec.NetSalary,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return salary.Record{}, err
	}
	return rec, nil
}

func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM salaries WHERE id = $1`, salaryColumns)

	rec, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, err
	}
	return rec, nil
}

func (r *salaryRepositoryImpl) List(ctx context.Context, employeeID string) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM salaries`, salaryColumns)
	args := []interface{}{}

	if employeeID != "" {
		query += ` WHERE employee_id = $1`
		args = append(args, employeeID)
	}

	query += ` ORDER BY year DESC, month DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		rec, err := scanSalary(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *salaryRepositoryImpl) Update(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	if req.BasicSalary == nil && req.Allowances == nil && req.Deductions == nil {
		return salary.Record{}, fmt.Errorf("no updatable fields provided for salary update")
	}

	rec, err := r.GetByID(ctx, id)
	if err != nil {
		return salary.Record{}, err
	}

	if req.BasicSalary != nil {
		rec.BasicSalary, err = decimal.NewFromString(*req.BasicSalary)
		if err != nil {
			return salary.Record{}, fmt.Errorf("invalid basic_salary: %w", err)
		}
	}
	if req.Allowances != nil {
		rec.Allowances, err = decimal.NewFromString(*req.Allowances)
		if err != nil {
			return salary.Record{}, fmt.Errorf("invalid allowances: %w", err)
		}
	}
	if req.Deductions != nil {
		rec.Deductions, err = decimal.NewFromString(*req.Deductions)
		if err != nil {
			return salary.Record{}, fmt.Errorf("invalid deductions: %w", err)
		}
	}

	// Net salary is derived, never written directly by clients.
	rec.NetSalary = rec.BasicSalary.Add(rec.Allowances).Sub(rec.Deductions)

	query := fmt.Sprintf(`
		UPDATE salaries
		SET basic_salary = $2, allowances = $3, deductions = $4, net_salary = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, salaryColumns)

	rec, err = scanSalary(q.QueryRow(ctx, query, id, rec.BasicSalary, rec.Allowances, rec.Deductions, rec.NetSalary))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, err
	}
	return rec, nil
}

func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}
