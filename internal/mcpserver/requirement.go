package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"basegraph.app/blueprint/internal/service"
)

type ParseTool struct {
	svc service.RequirementService
}

func NewParseTool(svc service.RequirementService) *ParseTool {
	return &ParseTool{svc: svc}
}

func (t *ParseTool) Definition() mcp.Tool {
	return mcp.NewTool("parse_requirement",
		mcp.WithDescription("Extract entities, actions, rules and workflows from a requirement without storing anything."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Free-text business requirement"),
		),
	)
}

func (t *ParseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}
	return jsonResult(t.svc.Parse(ctx, text))
}

// ProcessTool stores a full context for the requirement.
type ProcessTool struct {
	svc service.RequirementService
}

func NewProcessTool(svc service.RequirementService) *ProcessTool {
	return &ProcessTool{svc: svc}
}

func (t *ProcessTool) Definition() mcp.Tool {
	return mcp.NewTool("process_requirement",
		mcp.WithDescription("Analyze a requirement and store the resulting context. Returns the context_id used by generate_prd."),
		mcp.WithString("requirement",
			mcp.Required(),
			mcp.Description("Free-text business requirement"),
		),
		mcp.WithString("industry",
			mcp.Description("Optional industry hint stored with the context"),
		),
	)
}

func (t *ProcessTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requirement := req.GetString("requirement", "")
	if requirement == "" {
		return mcp.NewToolResultError("'requirement' is required"), nil
	}

	userContext := map[string]any{"source": "mcp"}
	if industry := req.GetString("industry", ""); industry != "" {
		userContext["industry"] = industry
	}

	result := t.svc.Process(ctx, requirement, userContext)
	if !result.Success {
		return mcp.NewToolResultError("requirement could not be processed: " + result.Error), nil
	}
	return jsonResult(result)
}
