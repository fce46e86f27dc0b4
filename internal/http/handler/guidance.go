package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/http/dto"
	"basegraph.app/blueprint/internal/service"
)

type GuidanceHandler struct {
	svc service.GuidanceService
}

func NewGuidanceHandler(svc service.GuidanceService) *GuidanceHandler {
	return &GuidanceHandler{svc: svc}
}

func (h *GuidanceHandler) Industries(c *gin.Context) {
	c.JSON(http.StatusOK, dto.IndustriesResponse{Industries: h.svc.Industries()})
}

// Industry returns the guidance bundle. Unknown industries get the general
// bundle; ?requirement= adds contextualized suggestions.
func (h *GuidanceHandler) Industry(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Industry(c.Param("industry"), c.Query("requirement")))
}

func (h *GuidanceHandler) DocType(c *gin.Context) {
	var req dto.DocTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity is required"})
		return
	}

	industry := req.Industry
	if industry == "" {
		industry = "general"
	}
	c.JSON(http.StatusOK, h.svc.DocType(req.Entity, industry, req.Attributes))
}

func (h *GuidanceHandler) Process(c *gin.Context) {
	industry := c.DefaultQuery("industry", "general")
	c.JSON(http.StatusOK, h.svc.Process(c.Param("process"), industry))
}

func (h *GuidanceHandler) BestPractices(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.BestPractices(c.Param("topic")))
}

func (h *GuidanceHandler) Feasibility(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.FeasibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requirement is required"})
		return
	}

	f, err := h.svc.Feasibility(ctx, req.Requirement)
	if err != nil {
		slog.WarnContext(ctx, "feasibility check failed", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "requirement could not be analyzed"})
		return
	}
	c.JSON(http.StatusOK, f)
}
