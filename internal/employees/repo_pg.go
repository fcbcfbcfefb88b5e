package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"smarthrms/internal/matching"
	"smarthrms/internal/shared/storage/db"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const employeeColumns = `id, name, email, department, position, phone, experience, availability, current_tasks, join_date, created_at`

// Create inserts the employee and links its skills, upserting catalog entries by name.
func (r *PGRepo) Create(ctx context.Context, emp Employee) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertEmployee = `
INSERT INTO employees (` + employeeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := tx.ExecContext(ctx, insertEmployee,
		emp.ID,
		emp.Name,
		emp.Email,
		nullableString(emp.Department),
		nullableString(emp.Position),
		nullableString(emp.Phone),
		emp.Experience,
		emp.Availability,
		emp.CurrentTasks,
		nullableString(emp.JoinDate),
		emp.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}

	const linkSkill = `
INSERT INTO employee_skills (employee_id, skill_id, level)
VALUES ($1, $2, $3)
ON CONFLICT (employee_id, skill_id) DO UPDATE SET level = EXCLUDED.level`
	for _, skill := range emp.Skills {
		skillID, err := db.EnsureSkill(ctx, tx, skill.Name, skill.Category)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, linkSkill, emp.ID, skillID, skill.Level); err != nil {
			return fmt.Errorf("link skill %q: %w", skill.Name, err)
		}
	}
	return tx.Commit()
}

// GetByID returns an employee with its skills.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 LIMIT 1`
	emp, err := scanEmployee(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Employee{}, ErrNotFound
		}
		return Employee{}, err
	}
	skills, err := r.loadSkills(ctx, `WHERE es.employee_id = $1`, id)
	if err != nil {
		return Employee{}, err
	}
	emp.Skills = skills[emp.ID]
	if emp.Skills == nil {
		emp.Skills = []matching.Skill{}
	}
	return emp, nil
}

// List returns every employee ordered by creation time.
func (r *PGRepo) List(ctx context.Context) ([]Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := r.loadSkills(ctx, ``)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Skills = skills[list[i].ID]
		if list[i].Skills == nil {
			list[i].Skills = []matching.Skill{}
		}
	}
	return list, nil
}

// Delete removes the employee and its skill links.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employee_skills WHERE employee_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
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

// loadSkills returns skills keyed by employee id, in catalog name order.
func (r *PGRepo) loadSkills(ctx context.Context, where string, args ...any) (map[string][]matching.Skill, error) {
	query := `
SELECT es.employee_id, s.name, s.category, es.level
FROM employee_skills es
JOIN skills s ON s.id = es.skill_id
` + where + `
ORDER BY es.employee_id, s.name`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]matching.Skill)
	for rows.Next() {
		var employeeID string
		var skill matching.Skill
		var category sql.NullString
		if err := rows.Scan(&employeeID, &skill.Name, &category, &skill.Level); err != nil {
			return nil, err
		}
		if category.Valid {
			skill.Category = category.String
		}
		out[employeeID] = append(out[employeeID], skill)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var emp Employee
	var department, position, phone sql.NullString
	var joinDate sql.NullTime
	if err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&department,
		&position,
		&phone,
		&emp.Experience,
		&emp.Availability,
		&emp.CurrentTasks,
		&joinDate,
		&emp.CreatedAt,
	); err != nil {
		return Employee{}, err
	}
	emp.Department = department.String
	emp.Position = position.String
	emp.Phone = phone.String
	if joinDate.Valid {
		emp.JoinDate = joinDate.Time.Format(DateLayout)
	}
	emp.CreatedAt = emp.CreatedAt.UTC()
	return emp, nil
}

func nullableString(val string) interface{} {
	if val == "" {
		return nil
	}
	return val
}
