package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"smarthrms/internal/employees"
)

// EmployeeLookup resolves the employee checking in.
type EmployeeLookup interface {
	Get(ctx context.Context, id string) (employees.Employee, error)
}

// Service contains business logic for attendance.
type Service struct {
	Repo      Repo
	Employees EmployeeLookup
	Now       func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, lookup EmployeeLookup) *Service {
	return &Service{Repo: repo, Employees: lookup, Now: time.Now}
}

// CheckIn opens today's record for the employee.
func (s *Service) CheckIn(ctx context.Context, employeeID string) (Record, error) {
	employeeID, err := s.resolveEmployee(ctx, employeeID)
	if err != nil {
		return Record{}, err
	}
	now := s.now()
	rec := Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       now.Format(DateLayout),
		CheckIn:    &now,
		Status:     StatusPresent,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// CheckOut closes today's record and computes hours worked.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (Record, error) {
	employeeID, err := s.resolveEmployee(ctx, employeeID)
	if err != nil {
		return Record{}, err
	}
	now := s.now()
	rec, err := s.Repo.Get(ctx, employeeID, now.Format(DateLayout))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, ErrNotCheckedIn
		}
		return Record{}, err
	}
	if rec.CheckIn == nil {
		return Record{}, ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return Record{}, ErrAlreadyCheckedOut
	}
	rec.CheckOut = &now
	rec.Hours = hoursBetween(*rec.CheckIn, now)
	if err := s.Repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns records matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]Record, error) {
	filter.EmployeeID = strings.TrimSpace(filter.EmployeeID)
	filter.Date = strings.TrimSpace(filter.Date)
	if filter.Date != "" {
		if _, err := time.Parse(DateLayout, filter.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return s.Repo.List(ctx, filter)
}

// Today returns the current date in DateLayout.
func (s *Service) Today() string {
	return s.now().Format(DateLayout)
}

func (s *Service) resolveEmployee(ctx context.Context, employeeID string) (string, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return "", fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	if s.Employees == nil {
		return employeeID, nil
	}
	if _, err := s.Employees.Get(ctx, employeeID); err != nil {
		if errors.Is(err, employees.ErrNotFound) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}
	return employeeID, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// hoursBetween rounds to two decimals.
func hoursBetween(from, to time.Time) float64 {
	hours := to.Sub(from).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}
