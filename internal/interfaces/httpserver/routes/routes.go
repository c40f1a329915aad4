package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/handlers"
)

// Provider encapsulates route registration.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider builds the route registrar.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		handlers: handlerProvider,
	}
}

// Register attaches the game and milestone routes.
func (p *Provider) Register(engine *gin.Engine) {
	registerGameRoutes(engine.Group("/games"), p.handlers.Game)
	registerMilestoneRoutes(engine.Group("/milestones"), p.handlers.Milestone)
}
