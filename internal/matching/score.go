package matching

import "math"

// ScoreMatch scores how well employee covers the task's required skills.
//
// Each requirement contributes up to MaxLevel points scaled by its importance
// weight. Holding a skill above the required level earns no bonus. A task with
// no requirements scores 0 for everyone.
func ScoreMatch(employee Employee, task Task) SkillMatch {
	held := make(map[string]Skill, len(employee.Skills))
	for _, s := range employee.Skills {
		if _, ok := held[s.Name]; !ok {
			held[s.Name] = s
		}
	}

	var totalScore, maxScore float64
	matched := make([]Skill, 0, len(task.RequiredSkills))
	missing := make([]RequiredSkill, 0, len(task.RequiredSkills))

	for _, required := range task.RequiredSkills {
		weight := float64(required.Importance.Weight())
		maxScore += weight * MaxLevel

		skill, ok := held[required.Name]
		if !ok {
			missing = append(missing, required)
			continue
		}

		totalScore += levelRatio(skill.Level, required.Level) * MaxLevel * weight
		matched = append(matched, skill)
		if skill.Level < required.Level {
			missing = append(missing, required)
		}
	}

	score := 0.0
	if maxScore > 0 {
		score = totalScore / maxScore * 100
	}

	return SkillMatch{
		EmployeeID:        employee.ID,
		EmployeeName:      employee.Name,
		MatchScore:        roundHalfUp(score),
		MatchedSkills:     matched,
		MissingSkills:     missing,
		AvailabilityScore: employee.Availability,
	}
}

// levelRatio returns held/required clamped to [0,1]. A requirement with no
// positive level is met by holding the skill at all.
func levelRatio(held, required int) float64 {
	if required <= 0 {
		return 1
	}
	if held <= 0 {
		return 0
	}
	return math.Min(float64(held)/float64(required), 1)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
