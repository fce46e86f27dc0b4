package dto

type PromptRequest struct {
	SystemPrompt string         `json:"system_prompt"`
	UserPrompt   string         `json:"user_prompt" binding:"required"`
	Context      map[string]any `json:"context,omitempty"`
}

type AnalyzeRequest struct {
	Requirement string         `json:"requirement" binding:"required"`
	Context     map[string]any `json:"context,omitempty"`
}

type DocTypeDesignRequest struct {
	Name            string   `json:"name" binding:"required"`
	Purpose         string   `json:"purpose"`
	RelatedEntities []string `json:"related_entities"`
}

type WorkflowRequest struct {
	ProcessName  string   `json:"process_name" binding:"required"`
	Stakeholders []string `json:"stakeholders"`
	Steps        []string `json:"steps"`
}

type AssistantHealthResponse struct {
	Healthy bool `json:"healthy"`
}
