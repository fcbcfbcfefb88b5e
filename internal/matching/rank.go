package matching

import "sort"

const (
	skillWeight        = 0.7
	availabilityWeight = 0.3
)

// CombinedScore blends skill coverage with availability for ranking.
func CombinedScore(m SkillMatch) float64 {
	return float64(m.MatchScore)*skillWeight + float64(m.AvailabilityScore)*availabilityWeight
}

// RankCandidates scores every employee against task and returns the best topN,
// highest combined score first. Equal scores keep roster order.
func RankCandidates(employees []Employee, task *Task, topN int) []RankedMatch {
	if len(employees) == 0 || task == nil || topN <= 0 {
		return []RankedMatch{}
	}

	ranked := make([]RankedMatch, 0, len(employees))
	for _, emp := range employees {
		m := ScoreMatch(emp, *task)
		ranked = append(ranked, RankedMatch{SkillMatch: m, CombinedScore: CombinedScore(m)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedScore > ranked[j].CombinedScore
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
