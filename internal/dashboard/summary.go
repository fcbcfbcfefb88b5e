package dashboard

import (
	"context"
	"fmt"
	"sort"

	"smarthrms/internal/tasks"
)

// Workload is one employee's share of the task board, counted from live
// assignments rather than the stored currentTasks column.
type Workload struct {
	EmployeeID     string `json:"employeeId"`
	Name           string `json:"name"`
	Department     string `json:"department,omitempty"`
	OpenTasks      int    `json:"openTasks"`
	InProgress     int    `json:"inProgress"`
	CompletedTasks int    `json:"completedTasks"`
}

// Summary backs the reports view.
type Summary struct {
	TasksByStatus map[tasks.Status]int `json:"tasksByStatus"`
	Workload      []Workload           `json:"workload"`
}

var allStatuses = []tasks.Status{
	tasks.StatusPending,
	tasks.StatusAssigned,
	tasks.StatusInProgress,
	tasks.StatusCompleted,
	tasks.StatusCancelled,
}

// Summary counts tasks per status and open work per employee. Every known
// status and every employee appears, with zero counts where nothing matches.
// Assignees missing from the employee list are still reported.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	emps, err := s.Employees.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list employees: %w", err)
	}
	taskList, err := s.Tasks.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list tasks: %w", err)
	}

	out := Summary{TasksByStatus: make(map[tasks.Status]int, len(allStatuses))}
	for _, st := range allStatuses {
		out.TasksByStatus[st] = 0
	}

	byID := make(map[string]*Workload, len(emps))
	order := make([]string, 0, len(emps))
	for _, e := range emps {
		byID[e.ID] = &Workload{EmployeeID: e.ID, Name: e.Name, Department: e.Department}
		order = append(order, e.ID)
	}

	for _, t := range taskList {
		out.TasksByStatus[t.Status]++
		if t.AssignedTo == "" {
			continue
		}
		w, ok := byID[t.AssignedTo]
		if !ok {
			w = &Workload{EmployeeID: t.AssignedTo}
			byID[t.AssignedTo] = w
			order = append(order, t.AssignedTo)
		}
		switch {
		case t.Status == tasks.StatusCompleted:
			w.CompletedTasks++
		case t.Status.Open():
			w.OpenTasks++
			if t.Status == tasks.StatusInProgress {
				w.InProgress++
			}
		}
	}

	out.Workload = make([]Workload, 0, len(order))
	for _, id := range order {
		out.Workload = append(out.Workload, *byID[id])
	}
	sort.SliceStable(out.Workload, func(i, j int) bool {
		return out.Workload[i].OpenTasks > out.Workload[j].OpenTasks
	})
	return out, nil
}
