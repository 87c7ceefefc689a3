package v1

import (
	"github.com/gin-gonic/gin"

	"parley-server/chat-api/internal/interfaces/httpserver/handlers"
)

func registerFileRoutes(router gin.IRoutes, handler *handlers.FileHandler) {
	router.POST("/files", handler.Upload)
	router.GET("/files", handler.List)
	router.GET("/files/:file_id", handler.Get)
	router.POST("/files/:file_id/analyze", handler.Analyze)
}
