package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"basegraph.app/blueprint/internal/service"
)

type GeneratePRDTool struct {
	svc service.PRDService
}

func NewGeneratePRDTool(svc service.PRDService) *GeneratePRDTool {
	return &GeneratePRDTool{svc: svc}
}

func (t *GeneratePRDTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_prd",
		mcp.WithDescription("Generate and store a PRD for a processed requirement context."),
		mcp.WithString("context_id",
			mcp.Required(),
			mcp.Description("context_id returned by process_requirement"),
		),
		mcp.WithBoolean("include_guidance",
			mcp.Description("Add industry guidance to the document (default: true)"),
		),
	)
}

func (t *GeneratePRDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contextID := req.GetString("context_id", "")
	if contextID == "" {
		return mcp.NewToolResultError("'context_id' is required"), nil
	}

	result, err := t.svc.Generate(ctx, contextID, req.GetBool("include_guidance", true))
	if err != nil {
		if errors.Is(err, service.ErrContextNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("context %q not found", contextID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate prd: %v", err)), nil
	}
	if !result.Success {
		return mcp.NewToolResultError("prd generation failed: " + result.Error), nil
	}

	// The full document is available through get_prd.
	return jsonResult(map[string]any{
		"prd_id":  result.PRDID,
		"summary": result.Summary,
	})
}

type GetPRDTool struct {
	svc service.PRDService
}

func NewGetPRDTool(svc service.PRDService) *GetPRDTool {
	return &GetPRDTool{svc: svc}
}

func (t *GetPRDTool) Definition() mcp.Tool {
	return mcp.NewTool("get_prd",
		mcp.WithDescription("Fetch a stored PRD, or only its summary."),
		mcp.WithString("prd_id",
			mcp.Required(),
			mcp.Description("Document id, e.g. PRD-1a2b3c4d"),
		),
		mcp.WithBoolean("summary_only",
			mcp.Description("Return the summary instead of the full document"),
		),
	)
}

func (t *GetPRDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prdID := req.GetString("prd_id", "")
	if prdID == "" {
		return mcp.NewToolResultError("'prd_id' is required"), nil
	}

	var (
		v   any
		err error
	)
	if req.GetBool("summary_only", false) {
		v, err = t.svc.Summary(ctx, prdID)
	} else {
		v, err = t.svc.Get(ctx, prdID)
	}
	if err != nil {
		if errors.Is(err, service.ErrPRDNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("prd %q not found", prdID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load prd: %v", err)), nil
	}
	return jsonResult(v)
}

type ListPRDsTool struct {
	svc service.PRDService
}

func NewListPRDsTool(svc service.PRDService) *ListPRDsTool {
	return &ListPRDsTool{svc: svc}
}

func (t *ListPRDsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_prds",
		mcp.WithDescription("List stored PRDs, newest first."),
	)
}

func (t *ListPRDsTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listings, err := t.svc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list prds: %v", err)), nil
	}
	return jsonResult(listings)
}
