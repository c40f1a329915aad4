package handlers

import (
	"github.com/milestone-mania/game-api/internal/config"
	"github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/domain/milestone"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Game      *GameHandler
	Milestone *MilestoneHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(cfg *config.Config, gameService game.Service, milestoneService milestone.Service) *Provider {
	return &Provider{
		Game:      NewGameHandler(gameService, cfg.LeaderboardDefaultLimit),
		Milestone: NewMilestoneHandler(milestoneService),
	}
}
