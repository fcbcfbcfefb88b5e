package matching

import "sort"

// AnalyzeGaps compares skill demand across tasks with proficient supply across
// employees. Largest shortage comes first; ties keep the order in which skills
// were first seen, task demand before employee supply.
//
// Demand counts every requirement regardless of importance or level. Supply
// counts skills held at ProficientLevel or above, but skills held below it are
// still listed with whatever supply they have.
func AnalyzeGaps(employees []Employee, tasks []Task) []SkillGapEntry {
	if len(employees) == 0 || len(tasks) == 0 {
		return []SkillGapEntry{}
	}

	demand := make(map[string]int)
	supply := make(map[string]int)
	var order []string
	seen := make(map[string]bool)
	note := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	for _, task := range tasks {
		for _, rs := range task.RequiredSkills {
			demand[rs.Name]++
			note(rs.Name)
		}
	}
	for _, emp := range employees {
		for _, s := range emp.Skills {
			if s.Level >= ProficientLevel {
				supply[s.Name]++
			}
			note(s.Name)
		}
	}

	entries := make([]SkillGapEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, SkillGapEntry{
			Skill:  name,
			Demand: demand[name],
			Supply: supply[name],
			Gap:    demand[name] - supply[name],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Gap > entries[j].Gap
	})
	return entries
}
