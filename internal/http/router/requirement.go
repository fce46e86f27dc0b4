package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/http/handler"
	"basegraph.app/blueprint/internal/http/handler/webhook"
)

func RequirementRouter(router *gin.RouterGroup, handler *handler.RequirementHandler) {
	router.POST("", handler.Process)
	router.POST("/parse", handler.Parse)
	router.POST("/upload", handler.Upload)
	router.POST("/gitlab", handler.GitLab)
	router.GET("/history", handler.History)
}

func ContextRouter(router *gin.RouterGroup, handler *handler.RequirementHandler) {
	router.GET("/:id", handler.GetContext)
	router.PATCH("/:id", handler.UpdateContext)
}

func WebhookRouter(router *gin.RouterGroup, gitlab *webhook.GitLabWebhookHandler) {
	router.POST("/gitlab", gitlab.HandleEvent)
}
