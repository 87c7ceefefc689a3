package v1

import (
	"github.com/gin-gonic/gin"

	"parley-server/chat-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", handler.Ask)
	router.GET("/messages", handler.History)
}
