package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"smarthrms/internal/matching"
)

var taskCols = []string{
	"id", "title", "description", "status", "priority", "estimated_hours",
	"progress", "due_date", "assigned_to", "created_at",
}

func newMock(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return &PGRepo{DB: sqlDB}, mock
}

func TestPGRepoCreateStoresRequirementsInOrder(t *testing.T) {
	repo, mock := newMock(t)
	task := Task{
		ID:       "task-1",
		Title:    "API",
		Status:   StatusPending,
		Priority: PriorityHigh,
		RequiredSkills: []matching.RequiredSkill{
			{Name: "Go", Level: 4, Importance: matching.ImportanceRequired},
			{Name: "SQL", Level: 3, Importance: matching.ImportancePreferred},
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").
		WithArgs("task-1", "API", nil, "pending", "high", 0.0, 0, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("INSERT INTO skills").
		WithArgs("Go", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("skill-go"))
	mock.ExpectExec("INSERT INTO task_required_skills").
		WithArgs("task-1", "skill-go", 4, "required", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("INSERT INTO skills").
		WithArgs("SQL", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("skill-sql"))
	mock.ExpectExec("INSERT INTO task_required_skills").
		WithArgs("task-1", "skill-sql", 3, "preferred", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMock(t)
	due := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM tasks WHERE id").
		WithArgs("task-1").
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow("task-1", "API", nil, "assigned", "urgent", 12.5, 10, due, "emp-1", time.Now()))
	mock.ExpectQuery("FROM task_required_skills").
		WithArgs("task-1").
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "name", "category", "level", "importance"}).
			AddRow("task-1", "Go", "Backend", 4, "required"))

	task, err := repo.GetByID(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if task.Status != StatusAssigned || task.AssignedTo != "emp-1" || task.DueDate != "2026-04-01" {
		t.Fatalf("unexpected task %+v", task)
	}
	if task.EstimatedHours != 12.5 {
		t.Fatalf("expected 12.5 hours, got %v", task.EstimatedHours)
	}
	if len(task.RequiredSkills) != 1 || task.RequiredSkills[0].Importance != matching.ImportanceRequired {
		t.Fatalf("unexpected requirements %+v", task.RequiredSkills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("SELECT (.+) FROM tasks WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(taskCols))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec("UPDATE tasks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), Task{ID: "missing", Title: "x", Status: StatusPending, Priority: PriorityLow})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListAttachesRequirements(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM tasks ORDER BY").
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow("task-1", "A", nil, "pending", "low", nil, 0, nil, nil, now).
			AddRow("task-2", "B", "desc", "completed", "medium", 3.0, 100, nil, nil, now))
	mock.ExpectQuery("FROM task_required_skills").
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "name", "category", "level", "importance"}).
			AddRow("task-1", "Go", nil, 3, "preferred").
			AddRow("task-1", "SQL", nil, 2, nil))

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(list))
	}
	if len(list[0].RequiredSkills) != 2 || list[0].RequiredSkills[1].Name != "SQL" {
		t.Fatalf("unexpected requirements %+v", list[0].RequiredSkills)
	}
	if list[1].RequiredSkills == nil || len(list[1].RequiredSkills) != 0 {
		t.Fatalf("expected empty non-nil requirements, got %#v", list[1].RequiredSkills)
	}
	if list[1].Description != "desc" {
		t.Fatalf("expected description, got %q", list[1].Description)
	}
}
