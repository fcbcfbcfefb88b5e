package leaves

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smarthrms/internal/employees"
)

// EmployeeLookup resolves applicants.
type EmployeeLookup interface {
	Get(ctx context.Context, id string) (employees.Employee, error)
}

// Service contains business logic for leave requests.
type Service struct {
	Repo      Repo
	Employees EmployeeLookup
	Now       func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, lookup EmployeeLookup) *Service {
	return &Service{Repo: repo, Employees: lookup, Now: time.Now}
}

// SubmitInput carries the fields of a new leave request.
type SubmitInput struct {
	EmployeeID string
	Type       Type
	StartDate  string
	EndDate    string
	Reason     string
}

// Submit validates the range and files a pending request.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Request, error) {
	req := Request{
		ID:         uuid.NewString(),
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		Type:       Type(strings.ToLower(strings.TrimSpace(string(in.Type)))),
		StartDate:  strings.TrimSpace(in.StartDate),
		EndDate:    strings.TrimSpace(in.EndDate),
		Reason:     strings.TrimSpace(in.Reason),
		Status:     StatusPending,
		AppliedAt:  s.now(),
	}
	if req.EmployeeID == "" {
		return Request{}, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	if !req.Type.Valid() {
		return Request{}, fmt.Errorf("%w: unknown leave type %q", ErrInvalidInput, req.Type)
	}
	days, err := inclusiveDays(req.StartDate, req.EndDate)
	if err != nil {
		return Request{}, err
	}
	req.Days = days

	if s.Employees != nil {
		if _, err := s.Employees.Get(ctx, req.EmployeeID); err != nil {
			if errors.Is(err, employees.ErrNotFound) {
				return Request{}, ErrEmployeeNotFound
			}
			return Request{}, err
		}
	}

	if err := s.Repo.Create(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Approve marks a pending request approved.
func (s *Service) Approve(ctx context.Context, id, reviewer string) (Request, error) {
	return s.review(ctx, id, StatusApproved, reviewer)
}

// Reject marks a pending request rejected.
func (s *Service) Reject(ctx context.Context, id, reviewer string) (Request, error) {
	return s.review(ctx, id, StatusRejected, reviewer)
}

// List returns requests, optionally filtered by status.
func (s *Service) List(ctx context.Context, status Status) ([]Request, error) {
	status = Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch status {
	case "", StatusPending, StatusApproved, StatusRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.Repo.List(ctx, status)
}

func (s *Service) review(ctx context.Context, id string, status Status, reviewer string) (Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	at := s.now()
	if err := s.Repo.Review(ctx, id, status, strings.TrimSpace(reviewer), at); err != nil {
		return Request{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// inclusiveDays counts calendar days from start to end, both included.
func inclusiveDays(start, end string) (int, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	if to.Before(from) {
		return 0, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}
