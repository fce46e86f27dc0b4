package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/assistant"
	"basegraph.app/blueprint/internal/http/dto"
)

// AssistantHandler exposes the assistant. Replies always answer 200 and carry
// their own success flag.
type AssistantHandler struct {
	assistant assistant.Assistant
}

func NewAssistantHandler(a assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

func (h *AssistantHandler) Prompt(c *gin.Context) {
	var req dto.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_prompt is required"})
		return
	}
	c.JSON(http.StatusOK, h.assistant.SendPrompt(c.Request.Context(), req.SystemPrompt, req.UserPrompt, req.Context))
}

func (h *AssistantHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requirement is required"})
		return
	}
	c.JSON(http.StatusOK, h.assistant.AnalyzeRequirement(c.Request.Context(), req.Requirement, req.Context))
}

func (h *AssistantHandler) DocType(c *gin.Context) {
	var req dto.DocTypeDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	c.JSON(http.StatusOK, h.assistant.DesignDocType(c.Request.Context(), assistant.DocTypeRequest{
		Name:            req.Name,
		Purpose:         req.Purpose,
		RelatedEntities: req.RelatedEntities,
	}))
}

func (h *AssistantHandler) Workflow(c *gin.Context) {
	var req dto.WorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "process_name is required"})
		return
	}
	c.JSON(http.StatusOK, h.assistant.SuggestWorkflow(c.Request.Context(), assistant.WorkflowRequest{
		ProcessName:  req.ProcessName,
		Stakeholders: req.Stakeholders,
		Steps:        req.Steps,
	}))
}

func (h *AssistantHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AssistantHealthResponse{Healthy: h.assistant.HealthCheck(c.Request.Context())})
}
