package webhook

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/intake"
	"basegraph.app/blueprint/internal/service"
)

// GitLabWebhookHandler turns labeled GitLab issues into processed requirements.
type GitLabWebhookHandler struct {
	requirements service.RequirementService
	secret       string
	label        string
}

// NewGitLabWebhookHandler builds the handler. An empty label processes every
// issue event.
func NewGitLabWebhookHandler(requirements service.RequirementService, secret, label string) *GitLabWebhookHandler {
	return &GitLabWebhookHandler{
		requirements: requirements,
		secret:       secret,
		label:        label,
	}
}

var processedActions = map[string]bool{
	"open":   true,
	"reopen": true,
	"update": true,
}

func (h *GitLabWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.GetHeader("X-Gitlab-Token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing webhook token"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook token"})
		return
	}

	var payload gitlabIssuePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.ObjectKind != "issue" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "event type not supported"})
		return
	}

	attrs := payload.ObjectAttributes
	if !processedActions[attrs.Action] {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "action not processed"})
		return
	}
	if !payload.hasLabel(h.label) {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "missing label"})
		return
	}

	project := payload.Project.PathWithNamespace
	userContext := map[string]any{
		"gitlab_action": attrs.Action,
		"reporter":      payload.User.Username,
	}
	if attrs.URL != "" {
		userContext["issue_url"] = attrs.URL
	}

	result, err := h.requirements.ProcessIssueText(ctx, project, attrs.IID, attrs.Title, attrs.Description, userContext)
	if err != nil {
		if errors.Is(err, intake.ErrEmptyDocument) {
			c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "issue has no text"})
			return
		}
		slog.ErrorContext(ctx, "failed to process gitlab issue event",
			"error", err,
			"project", project,
			"issue_iid", attrs.IID,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	slog.InfoContext(ctx, "gitlab webhook processed",
		"project", project,
		"issue_iid", attrs.IID,
		"action", attrs.Action,
		"success", result.Success,
		"context_id", result.ContextID,
	)

	c.JSON(http.StatusOK, gin.H{
		"status":     "processed",
		"success":    result.Success,
		"context_id": result.ContextID,
	})
}

type gitlabIssuePayload struct {
	ObjectKind string `json:"object_kind"`
	User       struct {
		Username string `json:"username"`
	} `json:"user"`
	Project struct {
		PathWithNamespace string `json:"path_with_namespace"`
	} `json:"project"`
	ObjectAttributes struct {
		IID         int64  `json:"iid"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Action      string `json:"action"`
		URL         string `json:"url"`
	} `json:"object_attributes"`
	Labels []struct {
		Title string `json:"title"`
	} `json:"labels"`
}

func (p gitlabIssuePayload) hasLabel(label string) bool {
	if label == "" {
		return true
	}
	for _, l := range p.Labels {
		if strings.EqualFold(l.Title, label) {
			return true
		}
	}
	return false
}
