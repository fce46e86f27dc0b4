package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/http/handler"
	"basegraph.app/blueprint/internal/http/handler/webhook"
	"basegraph.app/blueprint/internal/service"
)

type RouterConfig struct {
	Version string

	// The GitLab webhook is only mounted when a secret is set.
	GitLabWebhookSecret    string
	GitLabRequirementLabel string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.Version})
	})

	v1 := router.Group("/api/v1")
	{
		requirementHandler := handler.NewRequirementHandler(services.Requirements())
		RequirementRouter(v1.Group("/requirements"), requirementHandler)
		ContextRouter(v1.Group("/contexts"), requirementHandler)

		prdHandler := handler.NewPRDHandler(services.PRDs())
		PRDRouter(v1.Group("/prds"), prdHandler)
		JobRouter(v1.Group("/jobs"), prdHandler)

		GuidanceRouter(v1.Group("/guidance"), handler.NewGuidanceHandler(services.Guidance()))
		AssistantRouter(v1.Group("/assistant"), handler.NewAssistantHandler(services.Assistant()))
	}

	if cfg.GitLabWebhookSecret != "" {
		gitlabWebhook := webhook.NewGitLabWebhookHandler(services.Requirements(), cfg.GitLabWebhookSecret, cfg.GitLabRequirementLabel)
		WebhookRouter(router.Group("/webhooks"), gitlabWebhook)
	}
}
