package employees

import (
	"context"
	"strings"
	"sync"

	"smarthrms/internal/matching"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Employee
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Employee)}
}

// Create stores a new employee; emails are unique case-insensitively.
func (r *MemoryRepo) Create(ctx context.Context, emp Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Email, emp.Email) {
			return ErrDuplicateEmail
		}
	}
	if _, ok := r.byID[emp.ID]; !ok {
		r.order = append(r.order, emp.ID)
	}
	r.byID[emp.ID] = clone(emp)
	return nil
}

// GetByID returns an employee by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Employee, error) {
	if err := ctx.Err(); err != nil {
		return Employee{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	emp, ok := r.byID[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return clone(emp), nil
}

// List returns employees in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.byID[id]))
	}
	return out, nil
}

// Delete removes an employee.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func clone(emp Employee) Employee {
	emp.Skills = append([]matching.Skill(nil), emp.Skills...)
	return emp
}
