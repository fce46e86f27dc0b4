package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"basegraph.app/blueprint/internal/service"
)

type IndustryGuidanceTool struct {
	svc service.GuidanceService
}

func NewIndustryGuidanceTool(svc service.GuidanceService) *IndustryGuidanceTool {
	return &IndustryGuidanceTool{svc: svc}
}

func (t *IndustryGuidanceTool) Definition() mcp.Tool {
	return mcp.NewTool("industry_guidance",
		mcp.WithDescription("ERPNext modules, DocTypes, workflows and compliance notes for an industry. Unknown industries get general guidance."),
		mcp.WithString("industry",
			mcp.Required(),
			mcp.Description("Industry name, e.g. manufacturing, retail, healthcare"),
		),
		mcp.WithString("requirement",
			mcp.Description("Optional requirement text for tailored suggestions"),
		),
	)
}

func (t *IndustryGuidanceTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	industry := req.GetString("industry", "")
	if industry == "" {
		return mcp.NewToolResultError("'industry' is required"), nil
	}
	return jsonResult(t.svc.Industry(industry, req.GetString("requirement", "")))
}

type FeasibilityTool struct {
	svc service.GuidanceService
}

func NewFeasibilityTool(svc service.GuidanceService) *FeasibilityTool {
	return &FeasibilityTool{svc: svc}
}

func (t *FeasibilityTool) Definition() mcp.Tool {
	return mcp.NewTool("check_feasibility",
		mcp.WithDescription("Rate how well ERPNext covers a requirement out of the box."),
		mcp.WithString("requirement",
			mcp.Required(),
			mcp.Description("Free-text business requirement"),
		),
	)
}

func (t *FeasibilityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requirement := req.GetString("requirement", "")
	if requirement == "" {
		return mcp.NewToolResultError("'requirement' is required"), nil
	}

	f, err := t.svc.Feasibility(ctx, requirement)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("requirement could not be analyzed: %v", err)), nil
	}
	return jsonResult(f)
}
