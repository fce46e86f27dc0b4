package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/blueprint/internal/http/handler"
)

func PRDRouter(router *gin.RouterGroup, handler *handler.PRDHandler) {
	router.POST("", handler.Create)
	router.GET("", handler.List)
	router.GET("/:id", handler.Get)
	router.GET("/:id/summary", handler.Summary)
	router.GET("/:id/export", handler.Export)
}

func JobRouter(router *gin.RouterGroup, handler *handler.PRDHandler) {
	router.GET("/:id", handler.Job)
}
