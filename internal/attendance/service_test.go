package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarthrms/internal/employees"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *clock, string) {
	t.Helper()
	empSvc := employees.NewService(employees.NewMemoryRepo())
	emp, err := empSvc.Create(context.Background(), employees.CreateInput{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("employee Create: %v", err)
	}
	clk := &clock{t: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	svc := NewService(NewMemoryRepo(), empSvc)
	svc.Now = clk.now
	return svc, clk, emp.ID
}

func TestCheckInCheckOutComputesHours(t *testing.T) {
	svc, clk, empID := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CheckIn(ctx, empID)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Status != StatusPresent || rec.Date != "2026-03-02" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if _, err := svc.CheckIn(ctx, empID); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}

	clk.t = clk.t.Add(8*time.Hour + 20*time.Minute)
	out, err := svc.CheckOut(ctx, empID)
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if out.Hours != 8.33 {
		t.Fatalf("expected 8.33 hours, got %v", out.Hours)
	}
	if _, err := svc.CheckOut(ctx, empID); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Fatalf("expected ErrAlreadyCheckedOut, got %v", err)
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _, empID := newTestService(t)
	if _, err := svc.CheckOut(context.Background(), empID); !errors.Is(err, ErrNotCheckedIn) {
		t.Fatalf("expected ErrNotCheckedIn, got %v", err)
	}
}

func TestCheckInUnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.CheckIn(context.Background(), "ghost"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.CheckIn(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, clk, empID := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CheckIn(ctx, empID); err != nil {
			t.Fatalf("CheckIn day %d: %v", i, err)
		}
		clk.t = clk.t.Add(24 * time.Hour)
	}

	list, err := svc.List(ctx, Filter{EmployeeID: empID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].Date != "2026-03-04" || list[2].Date != "2026-03-02" {
		t.Fatalf("unexpected order %+v", list)
	}

	list, err = svc.List(ctx, Filter{Date: "2026-03-03"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record for date, got %d", len(list))
	}

	if _, err := svc.List(ctx, Filter{Date: "03/03/2026"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		end  time.Time
		want float64
	}{
		{start.Add(90 * time.Minute), 1.5},
		{start.Add(10 * time.Minute), 0.17},
		{start.Add(-time.Minute), 0},
	}
	for _, tc := range cases {
		if got := hoursBetween(start, tc.end); got != tc.want {
			t.Fatalf("hoursBetween(%s) = %v, want %v", tc.end.Sub(start), got, tc.want)
		}
	}
}
