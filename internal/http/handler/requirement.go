package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/http/dto"
	"basegraph.app/blueprint/internal/intake"
	"basegraph.app/blueprint/internal/service"
)

const (
	defaultHistoryLimit = 50
	maxUploadBytes      = 20 << 20
)

type RequirementHandler struct {
	svc service.RequirementService
}

func NewRequirementHandler(svc service.RequirementService) *RequirementHandler {
	return &RequirementHandler{svc: svc}
}

// Parse extracts structure from a requirement without storing anything.
func (h *RequirementHandler) Parse(c *gin.Context) {
	var req dto.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.svc.Parse(c.Request.Context(), req.Text))
}

// Process analyzes and stores a requirement. Analysis failures still answer
// 200 with success=false and a partial context.
func (h *RequirementHandler) Process(c *gin.Context) {
	var req dto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.svc.Process(c.Request.Context(), req.Requirement, req.Context))
}

// Upload processes the text of a multipart "file" field. An optional
// "context" form field carries a JSON object of annotations.
func (h *RequirementHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	var userContext map[string]any
	if raw := c.PostForm("context"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &userContext); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "context must be a JSON object"})
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}

	result, err := h.svc.ProcessDocument(ctx, fileHeader.Filename, data, userContext)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrUnsupportedFormat):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only pdf and xlsx files are supported"})
		case errors.Is(err, intake.ErrEmptyDocument):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "document contains no text"})
		default:
			slog.WarnContext(ctx, "failed to read uploaded document", "error", err, "filename", fileHeader.Filename)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "document could not be read"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GitLab processes the title and description of a GitLab issue.
func (h *RequirementHandler) GitLab(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GitLabIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project and issue_iid are required"})
		return
	}

	result, err := h.svc.ProcessIssue(ctx, req.Project, req.IssueIID, req.Context)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIssueSourceDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "gitlab intake is not configured"})
		case errors.Is(err, intake.ErrEmptyDocument):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "issue has no title or description"})
		default:
			slog.ErrorContext(ctx, "failed to fetch gitlab issue", "error", err, "project", req.Project, "issue_iid", req.IssueIID)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch issue"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RequirementHandler) History(c *gin.Context) {
	ctx := c.Request.Context()

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries, err := h.svc.History(ctx, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(entries))
}

func (h *RequirementHandler) GetContext(c *gin.Context) {
	ctx := c.Request.Context()

	rc, err := h.svc.Context(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrContextNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "context not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get context", "error", err, "context_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get context"})
		return
	}

	c.JSON(http.StatusOK, rc)
}

// UpdateContext merges annotations into a context. Analysis fields never change.
func (h *RequirementHandler) UpdateContext(c *gin.Context) {
	ctx := c.Request.Context()
	contextID := c.Param("id")

	var req dto.UpdateContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "updates are required"})
		return
	}

	if err := h.svc.UpdateContext(ctx, contextID, req.Updates); err != nil {
		if errors.Is(err, service.ErrContextNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "context not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update context", "error", err, "context_id", contextID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update context"})
		return
	}

	c.JSON(http.StatusOK, dto.UpdateContextResponse{Success: true, ContextID: contextID})
}
