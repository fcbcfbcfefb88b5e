package tasks

import "context"

// Repo defines persistence operations for tasks.
type Repo interface {
	Create(ctx context.Context, task Task) error
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	// Update rewrites the task row; required skills are fixed at creation.
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, id string) error
}
