package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const recordColumns = `id, employee_id, date, check_in, check_out, status, hours`

func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO attendance (` + recordColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (employee_id, date) DO NOTHING`
	res, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		nullableTime(rec.CheckIn),
		nullableTime(rec.CheckOut),
		string(rec.Status),
		rec.Hours,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyCheckedIn
	}
	return nil
}

func (r *PGRepo) Get(ctx context.Context, employeeID, date string) (Record, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance WHERE employee_id = $1 AND date = $2 LIMIT 1`
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (r *PGRepo) Update(ctx context.Context, rec Record) error {
	const query = `
UPDATE attendance
SET check_in = $2, check_out = $3, status = $4, hours = $5
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		nullableTime(rec.CheckIn),
		nullableTime(rec.CheckOut),
		string(rec.Status),
		rec.Hours,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Record, error) {
	var where []string
	var args []any
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where = append(where, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		where = append(where, "date = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + recordColumns + ` FROM attendance`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, employee_id ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var date time.Time
	var checkIn, checkOut sql.NullTime
	var status string
	var hours sql.NullFloat64
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &date, &checkIn, &checkOut, &status, &hours); err != nil {
		return Record{}, err
	}
	rec.Date = date.Format(DateLayout)
	if checkIn.Valid {
		t := checkIn.Time.UTC()
		rec.CheckIn = &t
	}
	if checkOut.Valid {
		t := checkOut.Time.UTC()
		rec.CheckOut = &t
	}
	rec.Status = Status(status)
	rec.Hours = hours.Float64
	return rec, nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
