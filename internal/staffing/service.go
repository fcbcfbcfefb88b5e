package staffing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smarthrms/internal/matching"
	"smarthrms/internal/shared/metrics"
	"smarthrms/internal/shared/telemetry"
)

// MaxTopN bounds how many candidates a single request may ask for.
const MaxTopN = 50

// Service ranks candidates and reports skill gaps over a Source.
type Service struct {
	Source      Source
	DefaultTopN int
}

// NewService constructs a Service.
func NewService(src Source, defaultTopN int) *Service {
	return &Service{Source: src, DefaultTopN: defaultTopN}
}

// Ranking is the candidate list for one task.
type Ranking struct {
	TaskID     string                 `json:"taskId"`
	TaskTitle  string                 `json:"taskTitle"`
	TopN       int                    `json:"topN"`
	Evaluated  int                    `json:"evaluated"`
	Candidates []matching.RankedMatch `json:"candidates"`
}

// GapReport is the organization-wide skill gap analysis.
type GapReport struct {
	Employees int                      `json:"employees"`
	Tasks     int                      `json:"tasks"`
	Entries   []matching.SkillGapEntry `json:"entries"`
}

// ResolveTopN applies the default for zero and clamps to MaxTopN.
func (s *Service) ResolveTopN(topN int) (int, error) {
	if topN == 0 {
		topN = s.DefaultTopN
		if topN <= 0 {
			topN = matching.DefaultTopN
		}
	}
	if topN < 0 {
		return 0, fmt.Errorf("%w: top must be positive", ErrInvalidInput)
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}
	return topN, nil
}

// Candidates ranks every employee for the task and keeps the best topN.
func (s *Service) Candidates(ctx context.Context, taskID string, topN int) (Ranking, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return Ranking{}, fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}
	n, err := s.ResolveTopN(topN)
	if err != nil {
		return Ranking{}, err
	}
	task, err := s.Source.GetTask(ctx, taskID)
	if err != nil {
		return Ranking{}, s.sourceError("get_task", err)
	}
	roster, err := s.Source.ListEmployees(ctx)
	if err != nil {
		return Ranking{}, s.sourceError("list_employees", err)
	}

	start := time.Now()
	ranked := matching.RankCandidates(roster, &task, n)
	elapsed := metrics.Since(start)
	metrics.IncRankings()
	metrics.ObserveRankingDurationMs(elapsed)

	fields := map[string]any{
		"task_id":     task.ID,
		"evaluated":   len(roster),
		"returned":    len(ranked),
		"top_n":       n,
		"duration_ms": elapsed,
	}
	if len(ranked) > 0 {
		fields["best_employee_id"] = ranked[0].EmployeeID
		fields["best_combined_score"] = ranked[0].CombinedScore
	}
	telemetry.Info("staffing.ranked", fields)

	return Ranking{
		TaskID:     task.ID,
		TaskTitle:  task.Title,
		TopN:       n,
		Evaluated:  len(roster),
		Candidates: ranked,
	}, nil
}

// MatchEmployee scores one employee against one task.
func (s *Service) MatchEmployee(ctx context.Context, taskID, employeeID string) (matching.SkillMatch, error) {
	taskID = strings.TrimSpace(taskID)
	employeeID = strings.TrimSpace(employeeID)
	if taskID == "" || employeeID == "" {
		return matching.SkillMatch{}, fmt.Errorf("%w: task id and employee id are required", ErrInvalidInput)
	}
	task, err := s.Source.GetTask(ctx, taskID)
	if err != nil {
		return matching.SkillMatch{}, s.sourceError("get_task", err)
	}
	roster, err := s.Source.ListEmployees(ctx)
	if err != nil {
		return matching.SkillMatch{}, s.sourceError("list_employees", err)
	}
	for _, emp := range roster {
		if emp.ID == employeeID {
			return matching.ScoreMatch(emp, task), nil
		}
	}
	return matching.SkillMatch{}, ErrEmployeeNotFound
}

// Gaps compares demand across all tasks with proficient supply across all employees.
func (s *Service) Gaps(ctx context.Context) (GapReport, error) {
	roster, err := s.Source.ListEmployees(ctx)
	if err != nil {
		return GapReport{}, s.sourceError("list_employees", err)
	}
	taskList, err := s.Source.ListTasks(ctx)
	if err != nil {
		return GapReport{}, s.sourceError("list_tasks", err)
	}

	entries := matching.AnalyzeGaps(roster, taskList)
	metrics.IncGapReports()

	shortages := 0
	for _, e := range entries {
		if e.Gap > 0 {
			shortages++
		}
	}
	telemetry.Info("staffing.gaps", map[string]any{
		"employees": len(roster),
		"tasks":     len(taskList),
		"skills":    len(entries),
		"shortages": shortages,
	})

	return GapReport{Employees: len(roster), Tasks: len(taskList), Entries: entries}, nil
}

// sourceError counts and logs load failures other than a missing task.
func (s *Service) sourceError(op string, err error) error {
	if errors.Is(err, ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	metrics.IncErrors()
	telemetry.Error("staffing.source_failed", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
	return fmt.Errorf("staffing %s: %w", op, err)
}
