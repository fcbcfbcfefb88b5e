package employees

import (
	"time"

	"smarthrms/internal/matching"
)

// DateLayout is the calendar date format used for join dates.
const DateLayout = "2006-01-02"

// Employee is a staff record as stored by the directory.
type Employee struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Department   string           `json:"department"`
	Position     string           `json:"position"`
	Phone        string           `json:"phone,omitempty"`
	Experience   int              `json:"experience"`
	Availability int              `json:"availability"`
	CurrentTasks int              `json:"currentTasks"`
	JoinDate     string           `json:"joinDate"`
	Skills       []matching.Skill `json:"skills"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Profile returns the shape the matching engine scores.
func (e Employee) Profile() matching.Employee {
	skills := make([]matching.Skill, len(e.Skills))
	copy(skills, e.Skills)
	return matching.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Skills:       skills,
		Availability: e.Availability,
	}
}

// Profiles converts a slice of employees.
func Profiles(list []Employee) []matching.Employee {
	out := make([]matching.Employee, 0, len(list))
	for _, e := range list {
		out = append(out, e.Profile())
	}
	return out
}
