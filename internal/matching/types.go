package matching

import "strings"

// Importance describes how strongly a task needs a skill.
type Importance string

const (
	ImportanceRequired   Importance = "required"
	ImportancePreferred  Importance = "preferred"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// Weight returns the scoring weight for the importance. Unknown values weigh
// the same as nice-to-have.
func (i Importance) Weight() int {
	switch Importance(strings.ToLower(strings.TrimSpace(string(i)))) {
	case ImportanceRequired:
		return 3
	case ImportancePreferred:
		return 2
	default:
		return 1
	}
}

// Valid reports whether i is one of the known importance values.
func (i Importance) Valid() bool {
	switch i {
	case ImportanceRequired, ImportancePreferred, ImportanceNiceToHave:
		return true
	default:
		return false
	}
}

const (
	// MaxLevel is the top of the 1..5 proficiency scale.
	MaxLevel = 5
	// MinLevel is the bottom of the proficiency scale.
	MinLevel = 1
	// ProficientLevel is the lowest level counted as supply in gap analysis.
	ProficientLevel = 3
	// DefaultTopN is the number of candidates returned when callers do not ask for a size.
	DefaultTopN = 5
)

// Skill is a proficiency held by an employee.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

// RequiredSkill is a proficiency a task asks for.
type RequiredSkill struct {
	Name       string     `json:"name"`
	Level      int        `json:"level"`
	Importance Importance `json:"importance"`
	Category   string     `json:"category,omitempty"`
}

// Employee is the minimal employee shape the engine scores.
type Employee struct {
	ID           string
	Name         string
	Skills       []Skill
	Availability int
}

// Task is the minimal task shape the engine scores against.
type Task struct {
	ID             string
	Title          string
	RequiredSkills []RequiredSkill
}

// SkillMatch is the result of scoring one employee against one task.
type SkillMatch struct {
	EmployeeID        string          `json:"employeeId"`
	EmployeeName      string          `json:"employeeName,omitempty"`
	MatchScore        int             `json:"matchScore"`
	MatchedSkills     []Skill         `json:"matchedSkills"`
	MissingSkills     []RequiredSkill `json:"missingSkills"`
	AvailabilityScore int             `json:"availabilityScore"`
}

// RankedMatch is a SkillMatch plus the blended key it was ranked by.
type RankedMatch struct {
	SkillMatch
	CombinedScore float64 `json:"combinedScore"`
}

// SkillGapEntry is one row of the organization-wide gap report.
type SkillGapEntry struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
	Supply int    `json:"supply"`
	Gap    int    `json:"gap"`
}
