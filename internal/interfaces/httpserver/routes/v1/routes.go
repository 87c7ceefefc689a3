package v1

import (
	"github.com/gin-gonic/gin"

	"parley-server/chat-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all v1 routes to the given group.
func (r *Routes) Register(group gin.IRoutes) {
	registerChatRoutes(group, r.handlers.Chat)
	registerFileRoutes(group, r.handlers.File)
	registerUserRoutes(group, r.handlers.User)
}
