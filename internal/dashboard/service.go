package dashboard

import (
	"context"
	"fmt"
	"sort"

	"smarthrms/internal/attendance"
	"smarthrms/internal/employees"
	"smarthrms/internal/leaves"
	"smarthrms/internal/tasks"
)

// Stats is the headline summary shown on the HR dashboard.
type Stats struct {
	TotalEmployees  int      `json:"totalEmployees"`
	ActiveEmployees int      `json:"activeEmployees"`
	TotalTasks      int      `json:"totalTasks"`
	PendingTasks    int      `json:"pendingTasks"`
	CompletedTasks  int      `json:"completedTasks"`
	PresentToday    int      `json:"presentToday"`
	PendingLeaves   int      `json:"pendingLeaves"`
	Departments     []string `json:"departments"`
}

type employeeLister interface {
	List(ctx context.Context) ([]employees.Employee, error)
}

type taskLister interface {
	List(ctx context.Context) ([]tasks.Task, error)
}

type attendanceLister interface {
	List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error)
	Today() string
}

type leaveLister interface {
	List(ctx context.Context, status leaves.Status) ([]leaves.Request, error)
}

// Service aggregates dashboard numbers from the domain services.
type Service struct {
	Employees  employeeLister
	Tasks      taskLister
	Attendance attendanceLister
	Leaves     leaveLister
}

// Stats computes the dashboard summary.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	emps, err := s.Employees.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list employees: %w", err)
	}
	departments := make(map[string]struct{})
	for _, e := range emps {
		stats.TotalEmployees++
		if e.Availability > 0 {
			stats.ActiveEmployees++
		}
		if e.Department != "" {
			departments[e.Department] = struct{}{}
		}
	}
	stats.Departments = make([]string, 0, len(departments))
	for d := range departments {
		stats.Departments = append(stats.Departments, d)
	}
	sort.Strings(stats.Departments)

	taskList, err := s.Tasks.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list tasks: %w", err)
	}
	for _, t := range taskList {
		stats.TotalTasks++
		switch {
		case t.Status.Open():
			stats.PendingTasks++
		case t.Status == tasks.StatusCompleted:
			stats.CompletedTasks++
		}
	}

	if s.Attendance != nil {
		records, err := s.Attendance.List(ctx, attendance.Filter{Date: s.Attendance.Today()})
		if err != nil {
			return Stats{}, fmt.Errorf("list attendance: %w", err)
		}
		for _, r := range records {
			if r.Status == attendance.StatusPresent || r.Status == attendance.StatusLate {
				stats.PresentToday++
			}
		}
	}

	if s.Leaves != nil {
		pending, err := s.Leaves.List(ctx, leaves.StatusPending)
		if err != nil {
			return Stats{}, fmt.Errorf("list leaves: %w", err)
		}
		stats.PendingLeaves = len(pending)
	}

	return stats, nil
}
