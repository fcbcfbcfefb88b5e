package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smarthrms/internal/matching"
	"smarthrms/internal/shared/telemetry"
	"smarthrms/internal/staffing"
)

const rosterYAML = `
employees:
  - id: e1
    name: Ada
    availability: 50
    skills:
      - {name: Go, level: 5}
  - id: e2
    name: Bob
    availability: 100
    skills:
      - {name: Go, level: 2}
tasks:
  - id: t1
    title: Payments API
    requiredSkills:
      - {name: Go, level: 4, importance: required}
`

func writeRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(rosterYAML), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(telemetry.SetOutput(io.Discard))
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRankJSON(t *testing.T) {
	out, err := run(t, "rank", writeRoster(t), "--task", "t1", "--top", "1", "--format", "json")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	var ranking staffing.Ranking
	if err := json.Unmarshal([]byte(out), &ranking); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(ranking.Candidates) != 1 || ranking.Candidates[0].EmployeeID != "e1" {
		t.Fatalf("unexpected ranking %+v", ranking)
	}
}

func TestRankRequiresTask(t *testing.T) {
	if _, err := run(t, "rank", writeRoster(t)); err == nil {
		t.Fatalf("expected error without --task")
	}
}

func TestRankUnknownTask(t *testing.T) {
	if _, err := run(t, "rank", writeRoster(t), "--task", "nope"); err == nil {
		t.Fatalf("expected error for unknown task")
	}
}

func TestGapsMarkdown(t *testing.T) {
	out, err := run(t, "gaps", writeRoster(t), "--format", "markdown")
	if err != nil {
		t.Fatalf("gaps: %v", err)
	}
	if !strings.Contains(out, "| Go | 1 | 1 | 0 |") {
		t.Fatalf("unexpected markdown:\n%s", out)
	}
}

func TestMatchJSON(t *testing.T) {
	out, err := run(t, "match", writeRoster(t), "--task", "t1", "--employee", "e2", "--format", "json")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	var m matching.SkillMatch
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.MatchScore != 50 || len(m.MissingSkills) != 1 {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := run(t, "gaps", writeRoster(t), "--format", "csv"); err == nil {
		t.Fatalf("expected error for csv format")
	}
}
