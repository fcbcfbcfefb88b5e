// Package mcptools exposes staffing queries as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"smarthrms/internal/shared/telemetry"
	"smarthrms/internal/staffing"
)

// Tools binds MCP tool handlers to a staffing service.
type Tools struct {
	Staffing *staffing.Service
}

// NewServer builds an MCP server with every staffing tool registered.
func NewServer(name, version string, svc *staffing.Service) *server.MCPServer {
	s := server.NewMCPServer(name, version)
	(&Tools{Staffing: svc}).Register(s)
	return s
}

// Register adds rank_candidates, skill_gaps and score_match to s.
func (t *Tools) Register(s *server.MCPServer) {
	rank := mcp.NewTool("rank_candidates",
		mcp.WithDescription("Rank employees for a task by skill match and availability"),
	)
	rank.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"task_id": map[string]interface{}{"type": "string", "description": "ID of the task to staff"},
			"top":     map[string]interface{}{"type": "integer", "description": "Number of candidates to return (default 5, max 50)"},
		},
		Required: []string{"task_id"},
	}
	s.AddTool(rank, t.RankCandidates)

	gaps := mcp.NewTool("skill_gaps",
		mcp.WithDescription("Compare skill demand across all tasks with proficient supply across all employees"),
	)
	gaps.InputSchema = mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]interface{}{},
	}
	s.AddTool(gaps, t.SkillGaps)

	score := mcp.NewTool("score_match",
		mcp.WithDescription("Score one employee against one task's required skills"),
	)
	score.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"task_id":     map[string]interface{}{"type": "string", "description": "ID of the task"},
			"employee_id": map[string]interface{}{"type": "string", "description": "ID of the employee"},
		},
		Required: []string{"task_id", "employee_id"},
	}
	s.AddTool(score, t.ScoreMatch)
}

// RankCandidates handles rank_candidates.
func (t *Tools) RankCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	taskID := stringArg(args, "task_id")
	if taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}
	top := 0
	if v, ok := args["top"].(float64); ok {
		if v <= 0 || v != float64(int(v)) {
			return mcp.NewToolResultError("top must be a positive integer"), nil
		}
		top = int(v)
	}

	ranking, err := t.Staffing.Candidates(ctx, taskID, top)
	if err != nil {
		return toolError("rank_candidates", err), nil
	}
	return jsonResult(ranking), nil
}

// SkillGaps handles skill_gaps.
func (t *Tools) SkillGaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := t.Staffing.Gaps(ctx)
	if err != nil {
		return toolError("skill_gaps", err), nil
	}
	return jsonResult(report), nil
}

// ScoreMatch handles score_match.
func (t *Tools) ScoreMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	taskID := stringArg(args, "task_id")
	employeeID := stringArg(args, "employee_id")
	if taskID == "" || employeeID == "" {
		return mcp.NewToolResultError("task_id and employee_id are required"), nil
	}

	match, err := t.Staffing.MatchEmployee(ctx, taskID, employeeID)
	if err != nil {
		return toolError("score_match", err), nil
	}
	return jsonResult(match), nil
}

func arguments(request mcp.CallToolRequest) (map[string]interface{}, bool) {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}, true
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	return args, ok
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func toolError(tool string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, staffing.ErrTaskNotFound):
		return mcp.NewToolResultError("task not found")
	case errors.Is(err, staffing.ErrEmployeeNotFound):
		return mcp.NewToolResultError("employee not found")
	case errors.Is(err, staffing.ErrInvalidInput):
		return mcp.NewToolResultError(err.Error())
	default:
		telemetry.Error("mcp.tool_failed", map[string]any{"tool": tool, "error": err.Error()})
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err))
	}
}
