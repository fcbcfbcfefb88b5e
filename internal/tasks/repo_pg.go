package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smarthrms/internal/matching"
	"smarthrms/internal/shared/storage/db"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const taskColumns = `id, title, description, status, priority, estimated_hours, progress, due_date, assigned_to, created_at`

// Create inserts the task and its required skills in one transaction.
func (r *PGRepo) Create(ctx context.Context, task Task) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertTask = `
INSERT INTO tasks (` + taskColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(ctx, insertTask,
		task.ID,
		task.Title,
		nullableString(task.Description),
		string(task.Status),
		string(task.Priority),
		task.EstimatedHours,
		task.Progress,
		nullableString(task.DueDate),
		nullableString(task.AssignedTo),
		task.CreatedAt,
	); err != nil {
		return err
	}

	const linkSkill = `
INSERT INTO task_required_skills (task_id, skill_id, level, importance, position)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (task_id, skill_id) DO UPDATE SET level = EXCLUDED.level, importance = EXCLUDED.importance`
	for i, req := range task.RequiredSkills {
		skillID, err := db.EnsureSkill(ctx, tx, req.Name, req.Category)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, linkSkill, task.ID, skillID, req.Level, string(req.Importance), i); err != nil {
			return fmt.Errorf("link required skill %q: %w", req.Name, err)
		}
	}
	return tx.Commit()
}

// GetByID returns a task with its required skills.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 LIMIT 1`
	task, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	required, err := r.loadRequirements(ctx, `WHERE trs.task_id = $1`, id)
	if err != nil {
		return Task{}, err
	}
	task.RequiredSkills = orEmpty(required[task.ID])
	return task, nil
}

// List returns every task ordered by creation time.
func (r *PGRepo) List(ctx context.Context) ([]Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	required, err := r.loadRequirements(ctx, ``)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].RequiredSkills = orEmpty(required[list[i].ID])
	}
	return list, nil
}

// Update rewrites the mutable task columns.
func (r *PGRepo) Update(ctx context.Context, task Task) error {
	const query = `
UPDATE tasks
SET title = $2, description = $3, status = $4, priority = $5, estimated_hours = $6,
    progress = $7, due_date = $8, assigned_to = $9
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		task.ID,
		task.Title,
		nullableString(task.Description),
		string(task.Status),
		string(task.Priority),
		task.EstimatedHours,
		task.Progress,
		nullableString(task.DueDate),
		nullableString(task.AssignedTo),
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

// Delete removes the task and its requirements.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_required_skills WHERE task_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
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
	return tx.Commit()
}

// loadRequirements returns requirements keyed by task id in the order they were declared.
func (r *PGRepo) loadRequirements(ctx context.Context, where string, args ...any) (map[string][]matching.RequiredSkill, error) {
	query := `
SELECT trs.task_id, s.name, s.category, trs.level, trs.importance
FROM task_required_skills trs
JOIN skills s ON s.id = trs.skill_id
` + where + `
ORDER BY trs.task_id, trs.position`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]matching.RequiredSkill)
	for rows.Next() {
		var taskID string
		var req matching.RequiredSkill
		var category, importance sql.NullString
		if err := rows.Scan(&taskID, &req.Name, &category, &req.Level, &importance); err != nil {
			return nil, err
		}
		req.Category = category.String
		req.Importance = matching.Importance(importance.String)
		out[taskID] = append(out[taskID], req)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var task Task
	var description, assignedTo sql.NullString
	var status, priority string
	var estimated sql.NullFloat64
	var dueDate sql.NullTime
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&status,
		&priority,
		&estimated,
		&task.Progress,
		&dueDate,
		&assignedTo,
		&task.CreatedAt,
	); err != nil {
		return Task{}, err
	}
	task.Description = description.String
	task.Status = Status(status)
	task.Priority = Priority(priority)
	task.EstimatedHours = estimated.Float64
	task.AssignedTo = assignedTo.String
	if dueDate.Valid {
		task.DueDate = dueDate.Time.Format(DateLayout)
	}
	task.CreatedAt = task.CreatedAt.UTC()
	return task, nil
}

func orEmpty(in []matching.RequiredSkill) []matching.RequiredSkill {
	if in == nil {
		return []matching.RequiredSkill{}
	}
	return in
}

func nullableString(val string) interface{} {
	if val == "" {
		return nil
	}
	return val
}
