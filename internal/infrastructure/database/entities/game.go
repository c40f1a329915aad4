package entities

import (
	"time"

	"github.com/milestone-mania/game-api/internal/domain/game"
)

// Game is the persisted game template.
type Game struct {
	ID        uint      `gorm:"primaryKey"`
	Slug      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_games_slug"`
	Name      *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null;index:idx_games_created_at"`
	Version   int64     `gorm:"not null;default:0"`
}

func (Game) TableName() string {
	return "games"
}

func (e Game) ToDomain() *game.Game {
	return &game.Game{
		ID:        e.ID,
		Slug:      e.Slug,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

// GameMilestone links a milestone to a position in a game.
type GameMilestone struct {
	ID           uint      `gorm:"primaryKey"`
	GameID       uint      `gorm:"not null;uniqueIndex:idx_game_milestones_game_milestone,priority:1;uniqueIndex:idx_game_milestones_game_order,priority:1"`
	MilestoneID  uint      `gorm:"not null;uniqueIndex:idx_game_milestones_game_milestone,priority:2"`
	CorrectOrder int       `gorm:"not null;uniqueIndex:idx_game_milestones_game_order,priority:2"`
	Version      int64     `gorm:"not null;default:0"`
	Game         Game      `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Milestone    Milestone `gorm:"foreignKey:MilestoneID"`
}

func (GameMilestone) TableName() string {
	return "game_milestones"
}

func (e GameMilestone) ToDomain() game.GameMilestone {
	return game.GameMilestone{
		ID:           e.ID,
		GameID:       e.GameID,
		Milestone:    e.Milestone.ToDomain(),
		CorrectOrder: e.CorrectOrder,
	}
}

// GameAttempt is one player's attempt at a game.
type GameAttempt struct {
	ID           uint       `gorm:"primaryKey"`
	GameID       uint       `gorm:"not null;index:idx_game_attempts_game_id"`
	PlayerName   *string    `gorm:"type:varchar(100)"`
	Status       string     `gorm:"type:varchar(20);not null;index:idx_game_attempts_status_created,priority:1"`
	AttemptCount int        `gorm:"not null;default:1"`
	CreatedAt    time.Time  `gorm:"not null;index:idx_game_attempts_status_created,priority:2"`
	CompletedAt  *time.Time
	Version      int64      `gorm:"not null;default:0"`
	Game         Game       `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (GameAttempt) TableName() string {
	return "game_attempts"
}

// NewGameAttempt maps a domain attempt to its row.
func NewGameAttempt(a *game.Attempt) GameAttempt {
	return GameAttempt{
		ID:           a.ID,
		GameID:       a.GameID,
		PlayerName:   a.PlayerName,
		Status:       string(a.Status),
		AttemptCount: a.AttemptCount,
		CreatedAt:    a.CreatedAt,
		CompletedAt:  a.CompletedAt,
		Version:      a.Version,
	}
}

// ToDomain maps the row back; Game must be preloaded for the slug to be set.
func (e GameAttempt) ToDomain() *game.Attempt {
	return &game.Attempt{
		ID:           e.ID,
		GameID:       e.GameID,
		GameSlug:     e.Game.Slug,
		PlayerName:   e.PlayerName,
		Status:       game.Status(e.Status),
		AttemptCount: e.AttemptCount,
		CreatedAt:    e.CreatedAt,
		CompletedAt:  e.CompletedAt,
		Version:      e.Version,
	}
}
