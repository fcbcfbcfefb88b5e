// Package roster loads offline staffing snapshots from YAML files.
package roster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"smarthrms/internal/matching"
	"smarthrms/internal/staffing"
)

// ErrInvalid is returned for rosters that parse but cannot be scored.
var ErrInvalid = errors.New("invalid roster")

type skill struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Category string `yaml:"category,omitempty"`
}

type requiredSkill struct {
	Name       string `yaml:"name"`
	Level      int    `yaml:"level"`
	Importance string `yaml:"importance,omitempty"`
	Category   string `yaml:"category,omitempty"`
}

type employee struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Availability int     `yaml:"availability"`
	Skills       []skill `yaml:"skills"`
}

type task struct {
	ID             string          `yaml:"id"`
	Title          string          `yaml:"title"`
	RequiredSkills []requiredSkill `yaml:"requiredSkills"`
}

type file struct {
	Employees []employee `yaml:"employees"`
	Tasks     []task     `yaml:"tasks"`
}

// Roster is an in-memory snapshot of employees and tasks. It implements staffing.Source.
type Roster struct {
	Employees []matching.Employee
	Tasks     []matching.Task
}

var _ staffing.Source = (*Roster)(nil)

// Load reads and parses a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes roster YAML. Unknown keys are rejected so a misspelled field
// does not silently score as zero.
func Parse(data []byte) (*Roster, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	r := &Roster{
		Employees: make([]matching.Employee, 0, len(f.Employees)),
		Tasks:     make([]matching.Task, 0, len(f.Tasks)),
	}
	seen := make(map[string]bool)
	for i, e := range f.Employees {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: employee %d has no id", ErrInvalid, i+1)
		}
		if seen["e:"+id] {
			return nil, fmt.Errorf("%w: duplicate employee id %q", ErrInvalid, id)
		}
		seen["e:"+id] = true
		skills := make([]matching.Skill, 0, len(e.Skills))
		for _, s := range e.Skills {
			skills = append(skills, matching.Skill{Name: s.Name, Level: s.Level, Category: s.Category})
		}
		r.Employees = append(r.Employees, matching.Employee{
			ID:           id,
			Name:         e.Name,
			Availability: e.Availability,
			Skills:       skills,
		})
	}
	for i, t := range f.Tasks {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: task %d has no id", ErrInvalid, i+1)
		}
		if seen["t:"+id] {
			return nil, fmt.Errorf("%w: duplicate task id %q", ErrInvalid, id)
		}
		seen["t:"+id] = true
		reqs := make([]matching.RequiredSkill, 0, len(t.RequiredSkills))
		for _, rs := range t.RequiredSkills {
			importance := matching.Importance(strings.ToLower(strings.TrimSpace(rs.Importance)))
			if importance == "" {
				importance = matching.ImportanceRequired
			}
			reqs = append(reqs, matching.RequiredSkill{
				Name:       rs.Name,
				Level:      rs.Level,
				Importance: importance,
				Category:   rs.Category,
			})
		}
		r.Tasks = append(r.Tasks, matching.Task{ID: id, Title: t.Title, RequiredSkills: reqs})
	}
	return r, nil
}

// Employee looks up one employee by ID.
func (r *Roster) Employee(id string) (matching.Employee, bool) {
	for _, e := range r.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return matching.Employee{}, false
}

// ListEmployees implements staffing.Source.
func (r *Roster) ListEmployees(ctx context.Context) ([]matching.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]matching.Employee(nil), r.Employees...), nil
}

// ListTasks implements staffing.Source.
func (r *Roster) ListTasks(ctx context.Context) ([]matching.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]matching.Task(nil), r.Tasks...), nil
}

// GetTask implements staffing.Source.
func (r *Roster) GetTask(ctx context.Context, id string) (matching.Task, error) {
	if err := ctx.Err(); err != nil {
		return matching.Task{}, err
	}
	for _, t := range r.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return matching.Task{}, staffing.ErrTaskNotFound
}
