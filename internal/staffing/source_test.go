package staffing

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarthrms/internal/employees"
	"smarthrms/internal/matching"
	"smarthrms/internal/tasks"
)

func TestRepoSourceAdaptsRecords(t *testing.T) {
	ctx := context.Background()
	empRepo := employees.NewMemoryRepo()
	taskRepo := tasks.NewMemoryRepo()

	if err := empRepo.Create(ctx, employees.Employee{
		ID: "e1", Name: "Ada", Email: "ada@example.com", Availability: 60,
		Skills: []matching.Skill{{Name: "Go", Level: 4}},
	}); err != nil {
		t.Fatalf("employee Create: %v", err)
	}
	if err := taskRepo.Create(ctx, tasks.Task{
		ID: "t1", Title: "API", Status: tasks.StatusPending, Priority: tasks.PriorityLow,
		RequiredSkills: []matching.RequiredSkill{{Name: "Go", Level: 3, Importance: matching.ImportanceRequired}},
		CreatedAt:      time.Now(),
	}); err != nil {
		t.Fatalf("task Create: %v", err)
	}

	src := RepoSource{Employees: empRepo, Tasks: taskRepo}

	roster, err := src.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if len(roster) != 1 || roster[0].Availability != 60 || roster[0].Skills[0].Name != "Go" {
		t.Fatalf("unexpected roster %+v", roster)
	}

	list, err := src.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(list) != 1 || list[0].RequiredSkills[0].Level != 3 {
		t.Fatalf("unexpected tasks %+v", list)
	}

	task, err := src.GetTask(ctx, "t1")
	if err != nil || task.Title != "API" {
		t.Fatalf("GetTask: %+v %v", task, err)
	}
	if _, err := src.GetTask(ctx, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
