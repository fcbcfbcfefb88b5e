package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smarthrms/internal/employees"
	"smarthrms/internal/shared/telemetry"
	"smarthrms/internal/tasks"
)

type staticTasks []tasks.Task

func (s staticTasks) List(ctx context.Context) ([]tasks.Task, error) {
	return s, nil
}

func seedBoard(t *testing.T) (*Service, map[string]string) {
	t.Helper()
	ctx := context.Background()
	empSvc := employees.NewService(employees.NewMemoryRepo())
	empSvc.Now = func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) }

	ids := make(map[string]string)
	for _, name := range []string{"Ada", "Bob", "Cy"} {
		e, err := empSvc.Create(ctx, employees.CreateInput{Name: name, Email: name + "@example.com", Department: "Engineering"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids[name] = e.ID
	}

	taskSvc := tasks.NewService(tasks.NewMemoryRepo(), empSvc)
	create := func(title, assignee string, status tasks.Status) {
		task, err := taskSvc.Create(ctx, tasks.CreateInput{Title: title})
		if err != nil {
			t.Fatalf("task Create: %v", err)
		}
		if assignee != "" {
			if _, err := taskSvc.Assign(ctx, task.ID, ids[assignee]); err != nil {
				t.Fatalf("Assign: %v", err)
			}
		}
		if status != "" {
			if _, err := taskSvc.Update(ctx, task.ID, tasks.UpdateInput{Status: &status}); err != nil {
				t.Fatalf("task Update: %v", err)
			}
		}
	}
	create("unassigned", "", "")
	create("bob-1", "Bob", "")
	create("bob-2", "Bob", tasks.StatusInProgress)
	create("ada-1", "Ada", tasks.StatusCompleted)
	create("ada-2", "Ada", "")
	create("dropped", "", tasks.StatusCancelled)

	return &Service{Employees: empSvc, Tasks: taskSvc}, ids
}

func TestSummaryTasksByStatus(t *testing.T) {
	svc, _ := seedBoard(t)
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := map[tasks.Status]int{
		tasks.StatusPending:    1,
		tasks.StatusAssigned:   2,
		tasks.StatusInProgress: 1,
		tasks.StatusCompleted:  1,
		tasks.StatusCancelled:  1,
	}
	if !reflect.DeepEqual(summary.TasksByStatus, want) {
		t.Fatalf("unexpected breakdown %v", summary.TasksByStatus)
	}
}

func TestSummaryWorkloadFollowsAssignments(t *testing.T) {
	svc, ids := seedBoard(t)
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := []Workload{
		{EmployeeID: ids["Bob"], Name: "Bob", Department: "Engineering", OpenTasks: 2, InProgress: 1},
		{EmployeeID: ids["Ada"], Name: "Ada", Department: "Engineering", OpenTasks: 1, CompletedTasks: 1},
		{EmployeeID: ids["Cy"], Name: "Cy", Department: "Engineering"},
	}
	if !reflect.DeepEqual(summary.Workload, want) {
		t.Fatalf("unexpected workload:\n got %+v\nwant %+v", summary.Workload, want)
	}
}

func TestSummaryKeepsUnknownAssignees(t *testing.T) {
	svc, _ := seedBoard(t)
	svc.Tasks = staticTasks{{ID: "t1", Status: tasks.StatusAssigned, AssignedTo: "gone"}}
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Workload[0].EmployeeID != "gone" || summary.Workload[0].OpenTasks != 1 {
		t.Fatalf("expected orphaned assignee first, got %+v", summary.Workload)
	}
	if summary.TasksByStatus[tasks.StatusPending] != 0 {
		t.Fatalf("expected zero-filled statuses, got %v", summary.TasksByStatus)
	}
}

func TestSummaryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Cleanup(telemetry.SetOutput(io.Discard))
	svc, _ := seedBoard(t)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		TasksByStatus map[string]int `json:"tasksByStatus"`
		Workload      []Workload     `json:"workload"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TasksByStatus["in-progress"] != 1 || len(body.Workload) != 3 {
		t.Fatalf("unexpected body %+v", body)
	}
}
