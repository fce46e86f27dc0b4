package handler_test

import (
	"context"
	"io"

	"basegraph.app/blueprint/internal/assistant"
	"basegraph.app/blueprint/internal/model"
)

type mockRequirementService struct {
	parseFn            func(ctx context.Context, text string) model.ParseResult
	processFn          func(ctx context.Context, requirement string, userContext map[string]any) model.ProcessResult
	processDocumentFn  func(ctx context.Context, filename string, data []byte, userContext map[string]any) (model.ProcessResult, error)
	processIssueFn     func(ctx context.Context, project string, issueIID int64, userContext map[string]any) (model.ProcessResult, error)
	processIssueTextFn func(ctx context.Context, project string, issueIID int64, title, description string, userContext map[string]any) (model.ProcessResult, error)
	contextFn          func(ctx context.Context, contextID string) (*model.Context, error)
	updateContextFn    func(ctx context.Context, contextID string, updates map[string]any) error
	historyFn          func(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

func (m *mockRequirementService) Parse(ctx context.Context, text string) model.ParseResult {
	if m.parseFn != nil {
		return m.parseFn(ctx, text)
	}
	return model.ParseResult{}
}

func (m *mockRequirementService) Process(ctx context.Context, requirement string, userContext map[string]any) model.ProcessResult {
	if m.processFn != nil {
		return m.processFn(ctx, requirement, userContext)
	}
	return model.ProcessResult{}
}

func (m *mockRequirementService) ProcessDocument(ctx context.Context, filename string, data []byte, userContext map[string]any) (model.ProcessResult, error) {
	if m.processDocumentFn != nil {
		return m.processDocumentFn(ctx, filename, data, userContext)
	}
	return model.ProcessResult{}, nil
}

func (m *mockRequirementService) ProcessIssue(ctx context.Context, project string, issueIID int64, userContext map[string]any) (model.ProcessResult, error) {
	if m.processIssueFn != nil {
		return m.processIssueFn(ctx, project, issueIID, userContext)
	}
	return model.ProcessResult{}, nil
}

func (m *mockRequirementService) ProcessIssueText(ctx context.Context, project string, issueIID int64, title, description string, userContext map[string]any) (model.ProcessResult, error) {
	if m.processIssueTextFn != nil {
		return m.processIssueTextFn(ctx, project, issueIID, title, description, userContext)
	}
	return model.ProcessResult{}, nil
}

func (m *mockRequirementService) Context(ctx context.Context, contextID string) (*model.Context, error) {
	if m.contextFn != nil {
		return m.contextFn(ctx, contextID)
	}
	return nil, nil
}

func (m *mockRequirementService) UpdateContext(ctx context.Context, contextID string, updates map[string]any) error {
	if m.updateContextFn != nil {
		return m.updateContextFn(ctx, contextID, updates)
	}
	return nil
}

func (m *mockRequirementService) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, limit)
	}
	return nil, nil
}

type mockPRDService struct {
	generateFn func(ctx context.Context, contextID string, includeGuidance bool) (model.GenerateResult, error)
	enqueueFn  func(ctx context.Context, contextID string, includeGuidance bool) (*model.GenerationJob, error)
	jobFn      func(ctx context.Context, jobID int64) (*model.GenerationJob, error)
	getFn      func(ctx context.Context, prdID string) (*model.PRD, error)
	summaryFn  func(ctx context.Context, prdID string) (*model.PRDSummary, error)
	listFn     func(ctx context.Context) ([]model.PRDListing, error)
	exportFn   func(ctx context.Context, prdID string, w io.Writer) error
}

func (m *mockPRDService) Generate(ctx context.Context, contextID string, includeGuidance bool) (model.GenerateResult, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, contextID, includeGuidance)
	}
	return model.GenerateResult{}, nil
}

func (m *mockPRDService) Enqueue(ctx context.Context, contextID string, includeGuidance bool) (*model.GenerationJob, error) {
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, contextID, includeGuidance)
	}
	return nil, nil
}

func (m *mockPRDService) Job(ctx context.Context, jobID int64) (*model.GenerationJob, error) {
	if m.jobFn != nil {
		return m.jobFn(ctx, jobID)
	}
	return nil, nil
}

func (m *mockPRDService) Get(ctx context.Context, prdID string) (*model.PRD, error) {
	if m.getFn != nil {
		return m.getFn(ctx, prdID)
	}
	return nil, nil
}

func (m *mockPRDService) Summary(ctx context.Context, prdID string) (*model.PRDSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, prdID)
	}
	return nil, nil
}

func (m *mockPRDService) List(ctx context.Context) ([]model.PRDListing, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPRDService) Export(ctx context.Context, prdID string, w io.Writer) error {
	if m.exportFn != nil {
		return m.exportFn(ctx, prdID, w)
	}
	return nil
}

type mockAssistant struct {
	sendPromptFn func(ctx context.Context, systemPrompt, userPrompt string, promptContext map[string]any) model.AssistantReply
	analyzeFn    func(ctx context.Context, requirement string, promptContext map[string]any) model.AssistantReply
	docTypeFn    func(ctx context.Context, req assistant.DocTypeRequest) model.AssistantReply
	workflowFn   func(ctx context.Context, req assistant.WorkflowRequest) model.AssistantReply
	healthy      bool
}

func (m *mockAssistant) SendPrompt(ctx context.Context, systemPrompt, userPrompt string, promptContext map[string]any) model.AssistantReply {
	if m.sendPromptFn != nil {
		return m.sendPromptFn(ctx, systemPrompt, userPrompt, promptContext)
	}
	return model.AssistantReply{Success: true}
}

func (m *mockAssistant) AnalyzeRequirement(ctx context.Context, requirement string, promptContext map[string]any) model.AssistantReply {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, requirement, promptContext)
	}
	return model.AssistantReply{Success: true}
}

func (m *mockAssistant) DesignDocType(ctx context.Context, req assistant.DocTypeRequest) model.AssistantReply {
	if m.docTypeFn != nil {
		return m.docTypeFn(ctx, req)
	}
	return model.AssistantReply{Success: true}
}

func (m *mockAssistant) SuggestWorkflow(ctx context.Context, req assistant.WorkflowRequest) model.AssistantReply {
	if m.workflowFn != nil {
		return m.workflowFn(ctx, req)
	}
	return model.AssistantReply{Success: true}
}

func (m *mockAssistant) HealthCheck(context.Context) bool {
	return m.healthy
}
