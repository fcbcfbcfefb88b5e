package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"smarthrms/internal/report"
	"smarthrms/internal/roster"
	"smarthrms/internal/shared/telemetry"
	"smarthrms/internal/staffing"
)

var version = "dev"

func main() {
	// Keep stdout clean for reports.
	telemetry.SetOutput(os.Stderr)
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "hrmsctl",
		Short:        "Rank candidates and analyze skill gaps from a roster file",
		Version:      version,
		SilenceUsage: true,
	}
	root.SetOut(out)

	var flagFormat string
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text, json, markdown")

	// ── rank ─────────────────────────────────────────────────────
	var (
		flagTask string
		flagTop  int
	)
	rankCmd := &cobra.Command{
		Use:   "rank <roster>",
		Short: "Rank employees for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, renderer, err := setup(args[0], flagFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			ranking, err := svc.Candidates(cmd.Context(), flagTask, flagTop)
			if err != nil {
				return err
			}
			return renderer.Ranking(ranking)
		},
	}
	rankCmd.Flags().StringVar(&flagTask, "task", "", "Task ID to staff")
	rankCmd.Flags().IntVar(&flagTop, "top", 0, "Number of candidates (default 5, max 50)")
	_ = rankCmd.MarkFlagRequired("task")

	// ── gaps ─────────────────────────────────────────────────────
	gapsCmd := &cobra.Command{
		Use:   "gaps <roster>",
		Short: "Compare skill demand with proficient supply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, renderer, err := setup(args[0], flagFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			gaps, err := svc.Gaps(cmd.Context())
			if err != nil {
				return err
			}
			return renderer.Gaps(gaps)
		},
	}

	// ── match ────────────────────────────────────────────────────
	var (
		flagMatchTask string
		flagEmployee  string
	)
	matchCmd := &cobra.Command{
		Use:   "match <roster>",
		Short: "Score one employee against one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, renderer, err := setup(args[0], flagFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			m, err := svc.MatchEmployee(cmd.Context(), flagMatchTask, flagEmployee)
			if err != nil {
				return err
			}
			return renderer.Match(m)
		},
	}
	matchCmd.Flags().StringVar(&flagMatchTask, "task", "", "Task ID")
	matchCmd.Flags().StringVar(&flagEmployee, "employee", "", "Employee ID")
	_ = matchCmd.MarkFlagRequired("task")
	_ = matchCmd.MarkFlagRequired("employee")

	root.AddCommand(rankCmd, gapsCmd, matchCmd)
	return root
}

func setup(path, format string, out io.Writer) (*staffing.Service, *report.Renderer, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, nil, err
	}
	r, err := roster.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return staffing.NewService(r, 0), report.New(out, f), nil
}
