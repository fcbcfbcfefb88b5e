package employees

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smarthrms/internal/matching"
)

// DefaultAvailability applies when a new employee does not state one.
const DefaultAvailability = 100

// Service contains business logic for employees.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// CreateInput carries the fields accepted when registering an employee.
type CreateInput struct {
	Name         string
	Email        string
	Department   string
	Position     string
	Phone        string
	Experience   int
	Availability *int
	JoinDate     string
	Skills       []matching.Skill
}

// Create validates and stores a new employee.
func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	emp := Employee{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Department:   strings.TrimSpace(in.Department),
		Position:     strings.TrimSpace(in.Position),
		Phone:        strings.TrimSpace(in.Phone),
		Experience:   in.Experience,
		Availability: DefaultAvailability,
		JoinDate:     strings.TrimSpace(in.JoinDate),
		CreatedAt:    s.now(),
	}
	if in.Availability != nil {
		emp.Availability = *in.Availability
	}
	if emp.JoinDate == "" {
		emp.JoinDate = emp.CreatedAt.Format(DateLayout)
	}

	if err := validate(emp); err != nil {
		return Employee{}, err
	}
	skills, err := normalizeSkills(in.Skills)
	if err != nil {
		return Employee{}, err
	}
	emp.Skills = skills

	if err := s.Repo.Create(ctx, emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// Get returns a single employee.
func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Employee{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Employee{}
	}
	return list, nil
}

// Delete removes an employee.
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

func validate(emp Employee) error {
	if emp.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if emp.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(emp.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if emp.Experience < 0 {
		return fmt.Errorf("%w: experience must not be negative", ErrInvalidInput)
	}
	if emp.Availability < 0 || emp.Availability > 100 {
		return fmt.Errorf("%w: availability must be between 0 and 100", ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, emp.JoinDate); err != nil {
		return fmt.Errorf("%w: joinDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// normalizeSkills trims names and rejects out-of-range levels. Later duplicates of a
// name are dropped so scoring sees the first one.
func normalizeSkills(in []matching.Skill) ([]matching.Skill, error) {
	out := make([]matching.Skill, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, skill := range in {
		skill.Name = strings.TrimSpace(skill.Name)
		skill.Category = strings.TrimSpace(skill.Category)
		if skill.Name == "" {
			return nil, fmt.Errorf("%w: skill name is required", ErrInvalidInput)
		}
		if skill.Level < matching.MinLevel || skill.Level > matching.MaxLevel {
			return nil, fmt.Errorf("%w: skill %q level must be between %d and %d", ErrInvalidInput, skill.Name, matching.MinLevel, matching.MaxLevel)
		}
		if _, ok := seen[skill.Name]; ok {
			continue
		}
		seen[skill.Name] = struct{}{}
		out = append(out, skill)
	}
	return out, nil
}
