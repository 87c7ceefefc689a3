package routes

import (
	"github.com/gin-gonic/gin"

	"parley-server/chat-api/internal/interfaces/httpserver/handlers"
	v1 "parley-server/chat-api/internal/interfaces/httpserver/routes/v1"
)

// Provider coordinates all route registrations.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider constructs the route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider),
	}
}

// Register attaches all versioned routes to the engine. The given middleware
// chain guards every versioned route.
func (p *Provider) Register(engine *gin.Engine, middleware ...gin.HandlerFunc) {
	group := engine.Group("/v1", middleware...)
	p.V1.Register(group)
}
