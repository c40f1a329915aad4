package game

import (
	"context"
	"errors"
)

// Storage signals. Repositories return these (possibly wrapped) so the service
// can react without knowing the driver.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateSlug     = errors.New("game slug already exists")
	ErrDuplicatePosition = errors.New("duplicate milestone or position within game")
	ErrVersionConflict   = errors.New("attempt was modified concurrently")
)

// Repository persists games and their ordered milestones.
type Repository interface {
	FindBySlug(ctx context.Context, slug string) (*Game, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Insert stores the game and its rows in one transaction and assigns IDs.
	Insert(ctx context.Context, g *Game, rows []GameMilestone) error
	// FindMilestones returns the game's rows ordered by CorrectOrder.
	FindMilestones(ctx context.Context, gameID uint) ([]GameMilestone, error)
	FindRecent(ctx context.Context, limit int) ([]Game, error)
}

// AttemptRepository persists attempts with optimistic concurrency on Version.
type AttemptRepository interface {
	FindByIDAndStatus(ctx context.Context, id uint, status Status) (*Attempt, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Insert(ctx context.Context, a *Attempt) error
	// Update writes status, count and completion when the stored version still
	// equals a.Version, then increments a.Version. Otherwise ErrVersionConflict.
	Update(ctx context.Context, a *Attempt) error
	// FindLeaderboard returns completed attempts ordered by AttemptCount then CompletedAt.
	FindLeaderboard(ctx context.Context, gameID uint, limit int) ([]Attempt, error)
	CountByGame(ctx context.Context, gameID uint) (total int64, completed int64, err error)
	// BestAttemptCount returns the lowest count among completed attempts, or nil if none.
	BestAttemptCount(ctx context.Context, gameID uint) (*int, error)
}
