package directory

import (
	"time"

	"github.com/tidwall/gjson"

	"smarthrms/internal/employees"
	"smarthrms/internal/matching"
	"smarthrms/internal/tasks"
)

// first returns the first of paths present on r. Rows written by different
// clients spell the same column differently.
func first(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// array unwraps columns stored either as JSON arrays or as JSON text.
func array(r gjson.Result) []gjson.Result {
	if r.Type == gjson.String {
		r = gjson.Parse(r.String())
	}
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}

func normalizeEmployee(r gjson.Result) employees.Employee {
	emp := employees.Employee{
		ID:           first(r, "id").String(),
		Name:         first(r, "name", "full_name").String(),
		Email:        first(r, "email").String(),
		Department:   first(r, "department").String(),
		Position:     first(r, "position").String(),
		Phone:        first(r, "phone").String(),
		Experience:   int(first(r, "experience").Int()),
		Availability: int(first(r, "availability").Int()),
		CurrentTasks: int(first(r, "currenttasks", "currentTasks", "current_tasks").Int()),
		JoinDate:     dateOnly(first(r, "joindate", "joinDate", "join_date").String()),
		CreatedAt:    parseTime(first(r, "created_at", "createdAt").String()),
	}
	emp.Skills = employeeSkills(r)
	return emp
}

// employeeSkills reads the joined employee_skills relation, falling back to a flat skills column.
func employeeSkills(r gjson.Result) []matching.Skill {
	out := make([]matching.Skill, 0)
	if joined := array(first(r, "employee_skills")); joined != nil {
		for _, row := range joined {
			name := first(row, "skills.name", "skill.name", "name").String()
			if name == "" {
				continue
			}
			out = append(out, matching.Skill{
				Name:     name,
				Level:    int(first(row, "level").Int()),
				Category: first(row, "skills.category", "skill.category", "category").String(),
			})
		}
		return out
	}
	for _, row := range array(first(r, "skills")) {
		name := first(row, "name").String()
		if name == "" {
			continue
		}
		out = append(out, matching.Skill{
			Name:     name,
			Level:    int(first(row, "level").Int()),
			Category: first(row, "category").String(),
		})
	}
	return out
}

func normalizeTask(r gjson.Result) tasks.Task {
	task := tasks.Task{
		ID:             first(r, "id").String(),
		Title:          first(r, "title").String(),
		Description:    first(r, "description").String(),
		Status:         tasks.Status(first(r, "status").String()),
		Priority:       tasks.Priority(first(r, "priority").String()),
		EstimatedHours: first(r, "estimatedhours", "estimatedHours", "estimated_hours").Float(),
		Progress:       int(first(r, "progress").Int()),
		DueDate:        dateOnly(first(r, "due_date", "dueDate", "duedate").String()),
		AssignedTo:     first(r, "assigned_to", "assignedTo", "assignedto").String(),
		CreatedAt:      parseTime(first(r, "created_at", "createdAt").String()),
	}
	if task.Status == "" {
		task.Status = tasks.StatusPending
	}
	if task.Priority == "" {
		task.Priority = tasks.PriorityMedium
	}
	task.RequiredSkills = requiredSkills(r)
	return task
}

func requiredSkills(r gjson.Result) []matching.RequiredSkill {
	out := make([]matching.RequiredSkill, 0)
	if joined := array(first(r, "task_required_skills")); joined != nil {
		for _, row := range joined {
			name := first(row, "skills.name", "skill.name", "name").String()
			if name == "" {
				continue
			}
			out = append(out, matching.RequiredSkill{
				Name:       name,
				Level:      int(first(row, "level").Int()),
				Importance: matching.Importance(first(row, "importance").String()),
				Category:   first(row, "skills.category", "skill.category", "category").String(),
			})
		}
		return out
	}
	for _, row := range array(first(r, "required_skills", "requiredSkills", "requiredskills")) {
		name := first(row, "name").String()
		if name == "" {
			continue
		}
		out = append(out, matching.RequiredSkill{
			Name:       name,
			Level:      int(first(row, "level").Int()),
			Importance: matching.Importance(first(row, "importance").String()),
			Category:   first(row, "category").String(),
		})
	}
	return out
}

// dateOnly trims timestamps down to YYYY-MM-DD.
func dateOnly(val string) string {
	if len(val) >= len(tasks.DateLayout) {
		if _, err := time.Parse(tasks.DateLayout, val[:len(tasks.DateLayout)]); err == nil {
			return val[:len(tasks.DateLayout)]
		}
	}
	return val
}

func parseTime(val string) time.Time {
	if val == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", tasks.DateLayout} {
		if t, err := time.Parse(layout, val); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
