package matching

import (
	"reflect"
	"testing"
)

func TestAnalyzeGapsCounts(t *testing.T) {
	employees := []Employee{
		{ID: "a", Skills: []Skill{{Name: "Go", Level: 4}, {Name: "SQL", Level: 2}}},
		{ID: "b", Skills: []Skill{{Name: "Go", Level: 3}, {Name: "Figma", Level: 5}}},
	}
	tasks := []Task{
		{ID: "t1", RequiredSkills: []RequiredSkill{
			{Name: "SQL", Level: 3, Importance: ImportanceRequired},
			{Name: "Go", Level: 2, Importance: ImportanceNiceToHave},
		}},
		{ID: "t2", RequiredSkills: []RequiredSkill{
			{Name: "SQL", Level: 1, Importance: ImportancePreferred},
			{Name: "Kafka", Level: 4, Importance: ImportanceRequired},
		}},
	}

	got := AnalyzeGaps(employees, tasks)

	want := []SkillGapEntry{
		{Skill: "SQL", Demand: 2, Supply: 0, Gap: 2},
		{Skill: "Kafka", Demand: 1, Supply: 0, Gap: 1},
		{Skill: "Go", Demand: 1, Supply: 2, Gap: -1},
		{Skill: "Figma", Demand: 0, Supply: 1, Gap: -1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected gaps:\n got %+v\nwant %+v", got, want)
	}
}

func TestAnalyzeGapsCompleteness(t *testing.T) {
	employees := []Employee{
		{Skills: []Skill{{Name: "Excel", Level: 1}, {Name: "Go", Level: 5}}},
		{Skills: []Skill{{Name: "Go", Level: 2}}},
	}
	tasks := []Task{
		{RequiredSkills: []RequiredSkill{{Name: "Go", Level: 3}, {Name: "Terraform", Level: 2}}},
	}

	got := AnalyzeGaps(employees, tasks)

	counts := make(map[string]int)
	for _, e := range got {
		counts[e.Skill]++
		if e.Gap != e.Demand-e.Supply {
			t.Fatalf("%s: gap %d != demand %d - supply %d", e.Skill, e.Gap, e.Demand, e.Supply)
		}
	}
	for _, name := range []string{"Excel", "Go", "Terraform"} {
		if counts[name] != 1 {
			t.Fatalf("expected %s exactly once, got %d", name, counts[name])
		}
	}
	for _, e := range got {
		if e.Skill == "Excel" && e.Supply != 0 {
			t.Fatalf("expected level-1 skill to contribute no supply, got %d", e.Supply)
		}
	}
}

func TestAnalyzeGapsSortedWithStableTies(t *testing.T) {
	employees := []Employee{{Skills: []Skill{{Name: "C", Level: 3}}}}
	tasks := []Task{{RequiredSkills: []RequiredSkill{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}}}

	got := AnalyzeGaps(employees, tasks)

	var names []string
	for _, e := range got {
		names = append(names, e.Skill)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestAnalyzeGapsRequiresBothSides(t *testing.T) {
	employees := []Employee{{Skills: []Skill{{Name: "Go", Level: 5}}}}
	tasks := []Task{{RequiredSkills: []RequiredSkill{{Name: "Go", Level: 3}}}}

	if got := AnalyzeGaps(nil, tasks); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result without employees, got %+v", got)
	}
	if got := AnalyzeGaps(employees, nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result without tasks, got %+v", got)
	}
}

func TestAnalyzeGapsIgnoresImportanceForDemand(t *testing.T) {
	employees := []Employee{{Skills: []Skill{{Name: "Go", Level: 5}}}}
	tasks := []Task{
		{RequiredSkills: []RequiredSkill{{Name: "Go", Level: 5, Importance: ImportanceRequired}}},
		{RequiredSkills: []RequiredSkill{{Name: "Go", Level: 1, Importance: ImportanceNiceToHave}}},
	}

	got := AnalyzeGaps(employees, tasks)
	if len(got) != 1 || got[0].Demand != 2 {
		t.Fatalf("expected demand 2 for Go, got %+v", got)
	}
}
