package staffing

import (
	"context"
	"errors"

	"smarthrms/internal/employees"
	"smarthrms/internal/matching"
	"smarthrms/internal/tasks"
)

// Source supplies the records the matching engine consumes.
// GetTask returns ErrTaskNotFound for unknown ids.
type Source interface {
	ListEmployees(ctx context.Context) ([]matching.Employee, error)
	ListTasks(ctx context.Context) ([]matching.Task, error)
	GetTask(ctx context.Context, id string) (matching.Task, error)
}

// RepoSource reads employees and tasks from the local repositories.
type RepoSource struct {
	Employees employees.Repo
	Tasks     tasks.Repo
}

func (s RepoSource) ListEmployees(ctx context.Context) ([]matching.Employee, error) {
	list, err := s.Employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return employees.Profiles(list), nil
}

func (s RepoSource) ListTasks(ctx context.Context) ([]matching.Task, error) {
	list, err := s.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return tasks.Requirements(list), nil
}

func (s RepoSource) GetTask(ctx context.Context, id string) (matching.Task, error) {
	task, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			return matching.Task{}, ErrTaskNotFound
		}
		return matching.Task{}, err
	}
	return task.Requirement(), nil
}
