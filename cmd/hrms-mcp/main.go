package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"smarthrms/internal/bootstrap"
	"smarthrms/internal/mcptools"
	"smarthrms/internal/roster"
	"smarthrms/internal/shared/config"
	"smarthrms/internal/shared/telemetry"
	"smarthrms/internal/staffing"
)

var version = "dev"

func main() {
	// stdout carries the protocol.
	telemetry.SetOutput(os.Stderr)

	var flagRoster string
	root := &cobra.Command{
		Use:          "hrms-mcp",
		Short:        "Serve staffing tools over MCP stdio",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := staffingService(flagRoster)
			if err != nil {
				return err
			}
			defer closeFn()

			s := mcptools.NewServer("smarthrms", version, svc)
			if err := server.ServeStdio(s); err != nil {
				return fmt.Errorf("serve stdio: %w", err)
			}
			return nil
		},
	}
	root.Flags().StringVar(&flagRoster, "roster", os.Getenv("HRMS_ROSTER"), "YAML roster file; when empty the configured backend is used")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// staffingService serves a roster file when given one and the configured
// backend otherwise.
func staffingService(rosterPath string) (*staffing.Service, func(), error) {
	if strings.TrimSpace(rosterPath) != "" {
		r, err := roster.Load(rosterPath)
		if err != nil {
			return nil, nil, err
		}
		telemetry.Info("mcp.roster_loaded", map[string]any{
			"path":      rosterPath,
			"employees": len(r.Employees),
			"tasks":     len(r.Tasks),
		})
		return staffing.NewService(r, 0), func() {}, nil
	}

	app, err := bootstrap.Build(config.Load())
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap build: %w", err)
	}
	return app.StaffingService, func() { _ = app.Close() }, nil
}
