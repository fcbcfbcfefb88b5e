package leaves

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const requestColumns = `id, employee_id, type, start_date, end_date, days, reason, status, applied_at, reviewed_by, reviewed_at`

func (r *PGRepo) Create(ctx context.Context, req Request) error {
	const query = `
INSERT INTO leave_requests (` + requestColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		req.ID,
		req.EmployeeID,
		string(req.Type),
		req.StartDate,
		req.EndDate,
		req.Days,
		nullableString(req.Reason),
		string(req.Status),
		req.AppliedAt,
		nullableString(req.ReviewedBy),
		nullableTime(req.ReviewedAt),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Request, error) {
	query := `SELECT ` + requestColumns + ` FROM leave_requests WHERE id = $1 LIMIT 1`
	req, err := scanRequest(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	return req, nil
}

func (r *PGRepo) List(ctx context.Context, status Status) ([]Request, error) {
	query := `SELECT ` + requestColumns + ` FROM leave_requests`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY applied_at DESC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Review only touches pending rows so concurrent reviewers cannot both win.
func (r *PGRepo) Review(ctx context.Context, id string, status Status, reviewer string, at time.Time) error {
	const query = `
UPDATE leave_requests
SET status = $2, reviewed_by = $3, reviewed_at = $4
WHERE id = $1 AND status = 'pending'`
	res, err := r.DB.ExecContext(ctx, query, id, string(status), nullableString(reviewer), at)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrInvalidTransition
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (Request, error) {
	var req Request
	var typ, status string
	var start, end time.Time
	var reason, reviewedBy sql.NullString
	var reviewedAt sql.NullTime
	if err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&typ,
		&start,
		&end,
		&req.Days,
		&reason,
		&status,
		&req.AppliedAt,
		&reviewedBy,
		&reviewedAt,
	); err != nil {
		return Request{}, err
	}
	req.Type = Type(typ)
	req.Status = Status(status)
	req.StartDate = start.Format(DateLayout)
	req.EndDate = end.Format(DateLayout)
	req.Reason = reason.String
	req.ReviewedBy = reviewedBy.String
	req.AppliedAt = req.AppliedAt.UTC()
	if reviewedAt.Valid {
		t := reviewedAt.Time.UTC()
		req.ReviewedAt = &t
	}
	return req, nil
}

func nullableString(val string) interface{} {
	if val == "" {
		return nil
	}
	return val
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
