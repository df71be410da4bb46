package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, employee_name, department, att_date,
	punch_in, punch_out, total_hours, status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var date time.Time
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Department, &date,
		&rec.PunchIn, &rec.PunchOut, &rec.TotalHours, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.Date = date.Format("2006-01-02")
	return rec, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			id, employee_id, employee_name, department, att_date,
			punch_in, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5::date,
			$6, $7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	rec.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Department, rec.Date,
		rec.PunchIn, rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance WHERE id = $1`, attendanceColumns)

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetOpenRecord(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance
		WHERE employee_id = $1 AND att_date = $2::date AND punch_out IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`, attendanceColumns)

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrNoOpenRecord
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance
		WHERE employee_id = $1 AND att_date = $2::date
		LIMIT 1
	`, attendanceColumns)

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance`, attendanceColumns)
	args := []interface{}{}

	if employeeID != "" {
		query += ` WHERE employee_id = $1`
		args = append(args, employeeID)
	}

	query += ` ORDER BY att_date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) ClosePunch(ctx context.Context, id string, punchOut string, totalHours float64, status attendance.Status) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE attendance
		SET punch_out = $2, total_hours = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, attendanceColumns)

	rec, err := scanAttendance(q.QueryRow(ctx, query, id, punchOut, totalHours, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) AbsenceCounts(ctx context.Context, since string) ([]attendance.AbsenceCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id,
			   MAX(employee_name) AS employee_name,
			   ARRAY_AGG(att_date::text ORDER BY att_date) AS dates,
			   COUNT(*) AS absences
		FROM attendance
		WHERE status = 'Absent' AND att_date >= $1::date
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []attendance.AbsenceCount
	for rows.Next() {
		var c attendance.AbsenceCount
		if err := rows.Scan(&c.EmployeeID, &c.EmployeeName, &c.Dates, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
