package matching

import (
	"math"
	"testing"
)

func reactTask() *Task {
	return &Task{ID: "t1", RequiredSkills: []RequiredSkill{{Name: "React", Level: 3, Importance: ImportanceRequired}}}
}

func TestRankCandidatesOrdersBySkill(t *testing.T) {
	a := Employee{ID: "A", Skills: []Skill{react(5)}, Availability: 100}
	b := Employee{ID: "B", Skills: []Skill{react(2)}, Availability: 100}

	got := RankCandidates([]Employee{b, a}, reactTask(), DefaultTopN)

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].EmployeeID != "A" || got[1].EmployeeID != "B" {
		t.Fatalf("expected [A B], got [%s %s]", got[0].EmployeeID, got[1].EmployeeID)
	}
	if got[0].MatchScore != 100 || got[1].MatchScore != 67 {
		t.Fatalf("unexpected scores %d, %d", got[0].MatchScore, got[1].MatchScore)
	}
	if math.Abs(got[0].CombinedScore-100) > 1e-9 {
		t.Fatalf("expected combined 100, got %v", got[0].CombinedScore)
	}
}

func TestRankCandidatesAvailabilityBlend(t *testing.T) {
	// Same skills; availability decides.
	busy := Employee{ID: "busy", Skills: []Skill{react(5)}, Availability: 10}
	free := Employee{ID: "free", Skills: []Skill{react(5)}, Availability: 90}

	got := RankCandidates([]Employee{busy, free}, reactTask(), 5)
	if got[0].EmployeeID != "free" {
		t.Fatalf("expected free first, got %s", got[0].EmployeeID)
	}
	if want := 97.0; math.Abs(got[0].CombinedScore-want) > 1e-9 {
		t.Fatalf("expected combined %v, got %v", want, got[0].CombinedScore)
	}
}

func TestRankCandidatesStableTies(t *testing.T) {
	roster := []Employee{
		{ID: "first", Skills: []Skill{react(3)}, Availability: 50},
		{ID: "second", Skills: []Skill{react(4)}, Availability: 50},
		{ID: "third", Skills: []Skill{react(5)}, Availability: 50},
	}

	got := RankCandidates(roster, reactTask(), 5)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].EmployeeID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].EmployeeID)
		}
	}
}

func TestRankCandidatesSizeAndOrder(t *testing.T) {
	var roster []Employee
	for i := 0; i < 9; i++ {
		roster = append(roster, Employee{
			ID:           string(rune('a' + i)),
			Skills:       []Skill{react(i%5 + 1)},
			Availability: (i * 37) % 101,
		})
	}

	for _, topN := range []int{1, 3, 5, 9, 20} {
		got := RankCandidates(roster, reactTask(), topN)
		want := topN
		if len(roster) < want {
			want = len(roster)
		}
		if len(got) != want {
			t.Fatalf("topN=%d: expected %d results, got %d", topN, want, len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].CombinedScore > got[i-1].CombinedScore {
				t.Fatalf("topN=%d: result %d (%v) outranks result %d (%v)", topN, i, got[i].CombinedScore, i-1, got[i-1].CombinedScore)
			}
		}
	}
}

func TestRankCandidatesDegenerateInputs(t *testing.T) {
	roster := []Employee{{ID: "a", Skills: []Skill{react(5)}}}
	tests := []struct {
		name      string
		employees []Employee
		task      *Task
		topN      int
	}{
		{"nil roster", nil, reactTask(), 5},
		{"empty roster", []Employee{}, reactTask(), 5},
		{"nil task", roster, nil, 5},
		{"zero topN", roster, reactTask(), 0},
		{"negative topN", roster, reactTask(), -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankCandidates(tt.employees, tt.task, tt.topN)
			if got == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if len(got) != 0 {
				t.Fatalf("expected no results, got %d", len(got))
			}
		})
	}
}
