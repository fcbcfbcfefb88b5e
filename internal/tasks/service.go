package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smarthrms/internal/employees"
	"smarthrms/internal/matching"
)

// EmployeeLookup resolves assignees.
type EmployeeLookup interface {
	Get(ctx context.Context, id string) (employees.Employee, error)
}

// Service contains business logic for tasks.
type Service struct {
	Repo      Repo
	Employees EmployeeLookup
	Now       func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, lookup EmployeeLookup) *Service {
	return &Service{Repo: repo, Employees: lookup, Now: time.Now}
}

// CreateInput carries the fields accepted when creating a task.
type CreateInput struct {
	Title          string
	Description    string
	Priority       Priority
	EstimatedHours float64
	DueDate        string
	RequiredSkills []matching.RequiredSkill
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Title          *string
	Description    *string
	Status         *Status
	Priority       *Priority
	EstimatedHours *float64
	Progress       *int
	DueDate        *string
}

// Create validates and stores a new pending task.
func (s *Service) Create(ctx context.Context, in CreateInput) (Task, error) {
	task := Task{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Status:         StatusPending,
		Priority:       in.Priority,
		EstimatedHours: in.EstimatedHours,
		DueDate:        strings.TrimSpace(in.DueDate),
		CreatedAt:      s.now(),
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if task.Title == "" {
		return Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !task.Priority.Valid() {
		return Task{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, task.Priority)
	}
	if task.EstimatedHours < 0 {
		return Task{}, fmt.Errorf("%w: estimatedHours must not be negative", ErrInvalidInput)
	}
	if err := validateDate(task.DueDate); err != nil {
		return Task{}, err
	}
	required, err := normalizeRequirements(in.RequiredSkills)
	if err != nil {
		return Task{}, err
	}
	task.RequiredSkills = required

	if err := s.Repo.Create(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Get returns a single task.
func (s *Service) Get(ctx context.Context, id string) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all tasks.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Task{}
	}
	return list, nil
}

// Update applies a partial patch.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
		}
		task.Title = title
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return Task{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *in.Priority)
		}
		task.Priority = *in.Priority
	}
	if in.EstimatedHours != nil {
		if *in.EstimatedHours < 0 {
			return Task{}, fmt.Errorf("%w: estimatedHours must not be negative", ErrInvalidInput)
		}
		task.EstimatedHours = *in.EstimatedHours
	}
	if in.Progress != nil {
		if *in.Progress < 0 || *in.Progress > 100 {
			return Task{}, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
		}
		task.Progress = *in.Progress
	}
	if in.DueDate != nil {
		due := strings.TrimSpace(*in.DueDate)
		if err := validateDate(due); err != nil {
			return Task{}, err
		}
		task.DueDate = due
	}
	if err := s.Repo.Update(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Assign gives an open task to an existing employee.
func (s *Service) Assign(ctx context.Context, id, employeeID string) (Task, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return Task{}, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	task, err := s.Get(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if !task.Status.Open() {
		return Task{}, fmt.Errorf("%w: task is %s", ErrInvalidTransition, task.Status)
	}
	if s.Employees != nil {
		if _, err := s.Employees.Get(ctx, employeeID); err != nil {
			if errors.Is(err, employees.ErrNotFound) {
				return Task{}, ErrEmployeeNotFound
			}
			return Task{}, err
		}
	}
	task.AssignedTo = employeeID
	task.Status = StatusAssigned
	if err := s.Repo.Update(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func validateDate(val string) error {
	if val == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, val); err != nil {
		return fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// normalizeRequirements trims names, defaults importance to required and
// drops later duplicates of a name.
func normalizeRequirements(in []matching.RequiredSkill) ([]matching.RequiredSkill, error) {
	out := make([]matching.RequiredSkill, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, req := range in {
		req.Name = strings.TrimSpace(req.Name)
		req.Category = strings.TrimSpace(req.Category)
		req.Importance = matching.Importance(strings.ToLower(strings.TrimSpace(string(req.Importance))))
		if req.Importance == "" {
			req.Importance = matching.ImportanceRequired
		}
		if req.Name == "" {
			return nil, fmt.Errorf("%w: required skill name is required", ErrInvalidInput)
		}
		if req.Level < matching.MinLevel || req.Level > matching.MaxLevel {
			return nil, fmt.Errorf("%w: required skill %q level must be between %d and %d", ErrInvalidInput, req.Name, matching.MinLevel, matching.MaxLevel)
		}
		if !req.Importance.Valid() {
			return nil, fmt.Errorf("%w: required skill %q has unknown importance %q", ErrInvalidInput, req.Name, req.Importance)
		}
		if _, ok := seen[req.Name]; ok {
			continue
		}
		seen[req.Name] = struct{}{}
		out = append(out, req)
	}
	return out, nil
}
