package tasks

import (
	"time"

	"smarthrms/internal/matching"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Open reports whether the task still needs work.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusAssigned || s == StatusInProgress
}

// Priority ranks how urgently a task should be staffed.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// Task is a unit of work with the skills it needs.
type Task struct {
	ID             string                   `json:"id"`
	Title          string                   `json:"title"`
	Description    string                   `json:"description,omitempty"`
	Status         Status                   `json:"status"`
	Priority       Priority                 `json:"priority"`
	EstimatedHours float64                  `json:"estimatedHours"`
	Progress       int                      `json:"progress"`
	DueDate        string                   `json:"dueDate,omitempty"`
	AssignedTo     string                   `json:"assignedTo,omitempty"`
	RequiredSkills []matching.RequiredSkill `json:"requiredSkills"`
	CreatedAt      time.Time                `json:"createdAt"`
}

// Requirement returns the shape the matching engine scores against.
func (t Task) Requirement() matching.Task {
	required := make([]matching.RequiredSkill, len(t.RequiredSkills))
	copy(required, t.RequiredSkills)
	return matching.Task{
		ID:             t.ID,
		Title:          t.Title,
		RequiredSkills: required,
	}
}

// Requirements converts a slice of tasks.
func Requirements(list []Task) []matching.Task {
	out := make([]matching.Task, 0, len(list))
	for _, t := range list {
		out = append(out, t.Requirement())
	}
	return out
}
