package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySkillName is returned when a catalog upsert has no name.
var ErrEmptySkillName = errors.New("skill name is empty")

const ensureSkillQuery = `
INSERT INTO skills (name, category)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE
SET category = COALESCE(NULLIF(EXCLUDED.category, ''), skills.category)
RETURNING id`

// EnsureSkill upserts a skill into the shared catalog and returns its id.
// An empty category never overwrites a stored one.
func EnsureSkill(ctx context.Context, tx *sql.Tx, name, category string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptySkillName
	}
	var id string
	if err := tx.QueryRowContext(ctx, ensureSkillQuery, name, strings.TrimSpace(category)).Scan(&id); err != nil {
		return "", fmt.Errorf("ensure skill %q: %w", name, err)
	}
	return id, nil
}
