package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/http/handler"
)

func GuidanceRouter(router *gin.RouterGroup, handler *handler.GuidanceHandler) {
	router.GET("/industries", handler.Industries)
	router.GET("/industries/:industry", handler.Industry)
	router.POST("/doctypes", handler.DocType)
	router.GET("/processes/:process", handler.Process)
	router.GET("/best-practices/:topic", handler.BestPractices)
	router.POST("/feasibility", handler.Feasibility)
}

func AssistantRouter(router *gin.RouterGroup, handler *handler.AssistantHandler) {
	router.POST("/prompt", handler.Prompt)
	router.POST("/analyze", handler.Analyze)
	router.POST("/doctype", handler.DocType)
	router.POST("/workflow", handler.Workflow)
	router.GET("/health", handler.Health)
}
