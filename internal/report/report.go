// Package report renders staffing results for terminals, scripts and documents.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"smarthrms/internal/matching"
	"smarthrms/internal/staffing"
)

// Format selects an output rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts text (or terminal), json, markdown and md. Empty means text.
func ParseFormat(val string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", "text", "terminal":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", val)
	}
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// Renderer writes reports to W.
type Renderer struct {
	W      io.Writer
	Format Format
	Color  bool
}

// New returns a Renderer for w. Text output is colored only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{W: w, Format: format, Color: format == FormatText && isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Ranking renders a candidate ranking.
func (r *Renderer) Ranking(rk staffing.Ranking) error {
	switch r.Format {
	case FormatJSON:
		return r.json(rk)
	case FormatMarkdown:
		var b strings.Builder
		fmt.Fprintf(&b, "## Candidates for %s\n\n", taskLabel(rk.TaskID, rk.TaskTitle))
		fmt.Fprintf(&b, "Evaluated %d employees, showing top %d.\n\n", rk.Evaluated, rk.TopN)
		b.WriteString("| # | Employee | Match | Availability | Combined | Missing |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for i, c := range rk.Candidates {
			fmt.Fprintf(&b, "| %d | %s | %d | %d | %.1f | %s |\n",
				i+1, escapeCell(employeeLabel(c.SkillMatch)), c.MatchScore, c.AvailabilityScore,
				c.CombinedScore, escapeCell(missingList(c.MissingSkills)))
		}
		_, err := io.WriteString(r.W, b.String())
		return err
	default:
		fmt.Fprintf(r.W, "%s\n", r.paint(ansiBold, "Candidates for "+taskLabel(rk.TaskID, rk.TaskTitle)))
		fmt.Fprintf(r.W, "evaluated %d, top %d\n\n", rk.Evaluated, rk.TopN)
		if len(rk.Candidates) == 0 {
			_, err := fmt.Fprintln(r.W, "no candidates")
			return err
		}
		tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tEMPLOYEE\tMATCH\tAVAIL\tCOMBINED\tMISSING")
		for i, c := range rk.Candidates {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.1f\t%s\n",
				i+1, employeeLabel(c.SkillMatch), r.score(c.MatchScore), c.AvailabilityScore,
				c.CombinedScore, missingList(c.MissingSkills))
		}
		return tw.Flush()
	}
}

// Match renders one employee/task score.
func (r *Renderer) Match(m matching.SkillMatch) error {
	switch r.Format {
	case FormatJSON:
		return r.json(m)
	case FormatMarkdown:
		var b strings.Builder
		fmt.Fprintf(&b, "## %s\n\n", employeeLabel(m))
		fmt.Fprintf(&b, "- Match score: %d\n", m.MatchScore)
		fmt.Fprintf(&b, "- Availability: %d\n", m.AvailabilityScore)
		fmt.Fprintf(&b, "- Combined: %.1f\n", matching.CombinedScore(m))
		fmt.Fprintf(&b, "- Matched: %s\n", matchedList(m.MatchedSkills))
		fmt.Fprintf(&b, "- Missing: %s\n", missingList(m.MissingSkills))
		_, err := io.WriteString(r.W, b.String())
		return err
	default:
		tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "employee\t%s\n", employeeLabel(m))
		fmt.Fprintf(tw, "match\t%s\n", r.score(m.MatchScore))
		fmt.Fprintf(tw, "availability\t%d\n", m.AvailabilityScore)
		fmt.Fprintf(tw, "combined\t%.1f\n", matching.CombinedScore(m))
		fmt.Fprintf(tw, "matched\t%s\n", matchedList(m.MatchedSkills))
		fmt.Fprintf(tw, "missing\t%s\n", missingList(m.MissingSkills))
		return tw.Flush()
	}
}

// Gaps renders a gap report.
func (r *Renderer) Gaps(g staffing.GapReport) error {
	switch r.Format {
	case FormatJSON:
		return r.json(g)
	case FormatMarkdown:
		var b strings.Builder
		b.WriteString("## Skill gaps\n\n")
		fmt.Fprintf(&b, "%d employees, %d tasks.\n\n", g.Employees, g.Tasks)
		b.WriteString("| Skill | Demand | Supply | Gap |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", escapeCell(e.Skill), e.Demand, e.Supply, e.Gap)
		}
		_, err := io.WriteString(r.W, b.String())
		return err
	default:
		fmt.Fprintf(r.W, "%s\n", r.paint(ansiBold, "Skill gaps"))
		fmt.Fprintf(r.W, "%d employees, %d tasks\n\n", g.Employees, g.Tasks)
		if len(g.Entries) == 0 {
			_, err := fmt.Fprintln(r.W, "nothing to compare")
			return err
		}
		tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SKILL\tDEMAND\tSUPPLY\tGAP")
		for _, e := range g.Entries {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", e.Skill, e.Demand, e.Supply, r.gap(e.Gap))
		}
		return tw.Flush()
	}
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) paint(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + ansiReset
}

func (r *Renderer) score(v int) string {
	s := fmt.Sprintf("%d", v)
	switch {
	case v >= 70:
		return r.paint(ansiGreen, s)
	case v >= 40:
		return r.paint(ansiYellow, s)
	default:
		return r.paint(ansiRed, s)
	}
}

func (r *Renderer) gap(v int) string {
	s := fmt.Sprintf("%d", v)
	if v > 0 {
		return r.paint(ansiRed, s)
	}
	return r.paint(ansiGreen, s)
}

func taskLabel(id, title string) string {
	if title == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", title, id)
}

func employeeLabel(m matching.SkillMatch) string {
	if m.EmployeeName == "" {
		return m.EmployeeID
	}
	return fmt.Sprintf("%s (%s)", m.EmployeeName, m.EmployeeID)
}

func missingList(list []matching.RequiredSkill) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(list))
	for _, rs := range list {
		parts = append(parts, fmt.Sprintf("%s L%d", rs.Name, rs.Level))
	}
	return strings.Join(parts, ", ")
}

func matchedList(list []matching.Skill) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(list))
	for _, s := range list {
		parts = append(parts, fmt.Sprintf("%s L%d", s.Name, s.Level))
	}
	return strings.Join(parts, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
