package employees

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarthrms/internal/matching"
)

func newTestService() *Service {
	svc := NewService(NewMemoryRepo())
	svc.Now = func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService()

	emp, err := svc.Create(context.Background(), CreateInput{
		Name:   "  Ada Lovelace ",
		Email:  "ADA@example.com",
		Skills: []matching.Skill{{Name: " Go ", Level: 4}, {Name: "Go", Level: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if emp.ID == "" {
		t.Fatalf("expected generated id")
	}
	if emp.Name != "Ada Lovelace" || emp.Email != "ada@example.com" {
		t.Fatalf("expected trimmed name and lowered email, got %q %q", emp.Name, emp.Email)
	}
	if emp.Availability != DefaultAvailability {
		t.Fatalf("expected availability %d, got %d", DefaultAvailability, emp.Availability)
	}
	if emp.JoinDate != "2026-03-02" {
		t.Fatalf("expected join date today, got %q", emp.JoinDate)
	}
	if len(emp.Skills) != 1 || emp.Skills[0].Level != 4 {
		t.Fatalf("expected first duplicate skill kept, got %+v", emp.Skills)
	}
}

func TestCreateKeepsExplicitZeroAvailability(t *testing.T) {
	svc := newTestService()
	zero := 0
	emp, err := svc.Create(context.Background(), CreateInput{Name: "Bob", Email: "bob@example.com", Availability: &zero})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if emp.Availability != 0 {
		t.Fatalf("expected availability 0, got %d", emp.Availability)
	}
}

func TestCreateValidation(t *testing.T) {
	over := 101
	cases := []struct {
		name string
		in   CreateInput
	}{
		{name: "missing name", in: CreateInput{Email: "a@b.c"}},
		{name: "missing email", in: CreateInput{Name: "A"}},
		{name: "bad email", in: CreateInput{Name: "A", Email: "nope"}},
		{name: "negative experience", in: CreateInput{Name: "A", Email: "a@b.c", Experience: -1}},
		{name: "availability above range", in: CreateInput{Name: "A", Email: "a@b.c", Availability: &over}},
		{name: "bad join date", in: CreateInput{Name: "A", Email: "a@b.c", JoinDate: "03/02/2026"}},
		{name: "empty skill name", in: CreateInput{Name: "A", Email: "a@b.c", Skills: []matching.Skill{{Name: " ", Level: 3}}}},
		{name: "skill level zero", in: CreateInput{Name: "A", Email: "a@b.c", Skills: []matching.Skill{{Name: "Go", Level: 0}}}},
		{name: "skill level six", in: CreateInput{Name: "A", Email: "a@b.c", Skills: []matching.Skill{{Name: "Go", Level: 6}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService()
			if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Create(context.Background(), CreateInput{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "B", Email: "A@example.com"}); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestListGetDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	first, err := svc.Create(ctx, CreateInput{Name: "First", Email: "first@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, CreateInput{Name: "Second", Email: "second@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("expected insertion order, got %+v", list)
	}

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	got, err := svc.Get(ctx, second.ID)
	if err != nil || got.Name != "Second" {
		t.Fatalf("expected second employee, got %+v err=%v", got, err)
	}
}

func TestProfileCopiesSkills(t *testing.T) {
	emp := Employee{ID: "e1", Name: "A", Availability: 70, Skills: []matching.Skill{{Name: "Go", Level: 3}}}
	profile := emp.Profile()
	profile.Skills[0].Level = 5
	if emp.Skills[0].Level != 3 {
		t.Fatalf("expected profile to own its skills slice")
	}
	if profile.Availability != 70 || profile.ID != "e1" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}
