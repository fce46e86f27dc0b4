package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/export"
	"basegraph.app/blueprint/internal/http/dto"
	"basegraph.app/blueprint/internal/service"
)

type PRDHandler struct {
	svc service.PRDService
}

func NewPRDHandler(svc service.PRDService) *PRDHandler {
	return &PRDHandler{svc: svc}
}

// Create generates a document for a context, or queues the generation when
// async is set. A failed assembly still answers 200 with success=false.
func (h *PRDHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GeneratePRDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "context_id is required"})
		return
	}

	if req.Async {
		job, err := h.svc.Enqueue(ctx, req.ContextID, req.IncludeGuidance)
		if err != nil {
			h.writeError(c, err, "failed to enqueue generation")
			return
		}
		c.JSON(http.StatusAccepted, dto.JobResponse{
			Job:       job,
			StatusURL: fmt.Sprintf("/api/v1/jobs/%d", job.ID),
		})
		return
	}

	result, err := h.svc.Generate(ctx, req.ContextID, req.IncludeGuidance)
	if err != nil {
		h.writeError(c, err, "failed to generate prd")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PRDHandler) List(c *gin.Context) {
	listings, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "failed to list prds")
		return
	}
	c.JSON(http.StatusOK, dto.ToPRDListResponse(listings))
}

func (h *PRDHandler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get prd")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *PRDHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get prd summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export downloads the document as an xlsx workbook.
func (h *PRDHandler) Export(c *gin.Context) {
	prdID := c.Param("id")

	var buf bytes.Buffer
	if err := h.svc.Export(c.Request.Context(), prdID, &buf); err != nil {
		h.writeError(c, err, "failed to export prd")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, prdID))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *PRDHandler) Job(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.svc.Job(c.Request.Context(), jobID)
	if err != nil {
		h.writeError(c, err, "failed to get job")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *PRDHandler) writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrContextNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "context not found"})
	case errors.Is(err, service.ErrPRDNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "prd not found"})
	case errors.Is(err, service.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	case errors.Is(err, service.ErrQueueUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "async generation is not configured"})
	default:
		slog.ErrorContext(c.Request.Context(), message, "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
