// Package assistant is the conversational front end. It answers prompts
// through an LLM when one is configured and falls back to canned replies
// keyed on the prompt otherwise.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"basegraph.app/blueprint/common/llm"
	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/internal/model"
)

type Assistant interface {
	SendPrompt(ctx context.Context, systemPrompt, userPrompt string, promptContext map[string]any) model.AssistantReply
	AnalyzeRequirement(ctx context.Context, requirement string, promptContext map[string]any) model.AssistantReply
	DesignDocType(ctx context.Context, req DocTypeRequest) model.AssistantReply
	SuggestWorkflow(ctx context.Context, req WorkflowRequest) model.AssistantReply
	HealthCheck(ctx context.Context) bool
}

type DocTypeRequest struct {
	Name            string   `json:"name"`
	Purpose         string   `json:"purpose"`
	RelatedEntities []string `json:"related_entities"`
}

type WorkflowRequest struct {
	ProcessName  string   `json:"process_name"`
	Stakeholders []string `json:"stakeholders"`
	Steps        []string `json:"steps"`
}

// Reply is the structured answer requested from the model.
type Reply struct {
	Summary          string   `json:"summary" jsonschema_description:"One paragraph answer to the request"`
	BusinessEntities []string `json:"business_entities" jsonschema_description:"Business entities involved"`
	DocTypes         []string `json:"suggested_doctypes" jsonschema_description:"ERPNext DocTypes to create or customize"`
	Workflows        []string `json:"workflows" jsonschema_description:"Workflows to configure"`
	Roles            []string `json:"roles" jsonschema_description:"User roles that need permissions"`
	Complexity       string   `json:"complexity" jsonschema:"enum=low,enum=medium,enum=high"`
	Reasoning        string   `json:"reasoning" jsonschema_description:"Why these recommendations fit"`
}

var replySchema = llm.SchemaOf[Reply]("assistant_reply", "ERPNext recommendations for a business request")

// Temperature applies when the config leaves it unset.
const Temperature = 0.2

type assistant struct {
	client llm.Client
}

// New returns an assistant backed by client. A nil client serves the
// canned replies.
func New(client llm.Client) Assistant {
	return &assistant{client: client}
}

// Open connects to the configured model, or serves the canned replies when
// no API key is set.
func Open(ctx context.Context, cfg llm.Config) (Assistant, error) {
	if cfg.Temperature == 0 {
		cfg.Temperature = Temperature
	}
	client, err := llm.New(cfg)
	if errors.Is(err, llm.ErrNotConfigured) {
		slog.InfoContext(ctx, "assistant serving offline replies")
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating llm client: %w", err)
	}
	slog.InfoContext(ctx, "assistant backed by llm", "model", client.Model())
	return New(client), nil
}

func (a *assistant) SendPrompt(ctx context.Context, systemPrompt, userPrompt string, promptContext map[string]any) model.AssistantReply {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "blueprint.assistant"})

	if a.client == nil {
		return mockReply(userPrompt)
	}

	var reply Reply
	usage, err := a.client.Complete(ctx, llm.Prompt{
		System:  systemPrompt,
		User:    userPrompt,
		Context: promptContext,
	}, replySchema, &reply)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get assistant reply",
			"error", err,
			"retryable", llm.Retryable(err))
		return model.AssistantReply{
			Success:  false,
			Error:    err.Error(),
			Response: map[string]any{"message": "Unable to process request at this time"},
		}
	}

	slog.InfoContext(ctx, "assistant replied",
		"model", a.client.Model(),
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"latency_ms", usage.Latency.Milliseconds())

	return model.AssistantReply{
		Success:   true,
		Response:  reply.asMap(),
		Reasoning: reply.Reasoning,
		Model:     a.client.Model(),
	}
}

func (a *assistant) AnalyzeRequirement(ctx context.Context, requirement string, promptContext map[string]any) model.AssistantReply {
	return a.SendPrompt(ctx, analyzeSystemPrompt, fmt.Sprintf(analyzeUserPrompt, requirement), promptContext)
}

func (a *assistant) DesignDocType(ctx context.Context, req DocTypeRequest) model.AssistantReply {
	name := req.Name
	if name == "" {
		name = "Custom DocType"
	}
	purpose := req.Purpose
	if purpose == "" {
		purpose = "General purpose DocType"
	}
	prompt := fmt.Sprintf(doctypeUserPrompt, name, purpose, strings.Join(req.RelatedEntities, ", "))
	return a.SendPrompt(ctx, doctypeSystemPrompt, prompt, nil)
}

func (a *assistant) SuggestWorkflow(ctx context.Context, req WorkflowRequest) model.AssistantReply {
	process := req.ProcessName
	if process == "" {
		process = "Business Process"
	}
	prompt := fmt.Sprintf(workflowUserPrompt, process, strings.Join(req.Stakeholders, ", "), strings.Join(req.Steps, ", "))
	return a.SendPrompt(ctx, workflowSystemPrompt, prompt, nil)
}

// HealthCheck reports whether prompts can be answered. The canned replies
// are always available.
func (a *assistant) HealthCheck(ctx context.Context) bool {
	if a.client == nil {
		return true
	}
	return a.client.Model() != ""
}

func (r Reply) asMap() map[string]any {
	return map[string]any{
		"summary":            r.Summary,
		"business_entities":  r.BusinessEntities,
		"suggested_doctypes": r.DocTypes,
		"workflows":          r.Workflows,
		"roles":              r.Roles,
		"complexity":         r.Complexity,
	}
}
