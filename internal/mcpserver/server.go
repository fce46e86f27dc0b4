// Package mcpserver exposes requirement processing and PRD generation as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/internal/service"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Tool is one MCP tool: its schema and its handler.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// New registers every tool on a fresh MCP server.
func New(services *service.Services) *server.MCPServer {
	s := server.NewMCPServer(
		"blueprint",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, t := range Tools(services) {
		def := t.Definition()
		s.AddTool(def, withLogFields(def.Name, t.Handle))
	}
	return s
}

// Tools returns the tool set in registration order.
func Tools(services *service.Services) []Tool {
	requirements := services.Requirements()
	prds := services.PRDs()
	guidance := services.Guidance()

	return []Tool{
		NewParseTool(requirements),
		NewProcessTool(requirements),
		NewGeneratePRDTool(prds),
		NewGetPRDTool(prds),
		NewListPRDsTool(prds),
		NewIndustryGuidanceTool(guidance),
		NewFeasibilityTool(guidance),
	}
}

func withLogFields(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			Component: "blueprint.mcp." + name,
			Source:    logger.Ptr("mcp"),
		})
		return h(ctx, req)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

const instructions = `Blueprint turns free-text ERPNext requirements into structured contexts and PRDs.
Call process_requirement first; it returns a context_id. Pass that id to generate_prd.
Use parse_requirement for a dry run that stores nothing.`
