package game

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/infrastructure/database/entities"
)

// GormAttemptRepository persists attempts with optimistic locking on version.
type GormAttemptRepository struct {
	db *gorm.DB
}

// NewGormAttemptRepository creates a repository backed by the provided DB.
func NewGormAttemptRepository(db *gorm.DB) *GormAttemptRepository {
	return &GormAttemptRepository{db: db}
}

func (r *GormAttemptRepository) FindByIDAndStatus(ctx context.Context, id uint, status domain.Status) (*domain.Attempt, error) {
	var record entities.GameAttempt
	err := r.db.WithContext(ctx).
		Preload("Game").
		Where("id = ? AND status = ?", id, string(status)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, dbError(ctx, err, "find attempt")
	}
	return record.ToDomain(), nil
}

func (r *GormAttemptRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.GameAttempt{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, dbError(ctx, err, "check attempt")
	}
	return count > 0, nil
}

func (r *GormAttemptRepository) Insert(ctx context.Context, a *domain.Attempt) error {
	record := entities.NewGameAttempt(a)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&record).Error; err != nil {
		return dbError(ctx, err, "insert attempt")
	}
	a.ID = record.ID
	a.Version = record.Version
	return nil
}

// Update applies the change only if nobody else bumped the version first.
func (r *GormAttemptRepository) Update(ctx context.Context, a *domain.Attempt) error {
	result := r.db.WithContext(ctx).
		Model(&entities.GameAttempt{}).
		Where("id = ? AND version = ?", a.ID, a.Version).
		Updates(map[string]any{
			"status":        string(a.Status),
			"attempt_count": a.AttemptCount,
			"completed_at":  a.CompletedAt,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dbError(ctx, result.Error, "update attempt")
	}
	if result.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}
	a.Version++
	return nil
}

func (r *GormAttemptRepository) FindLeaderboard(ctx context.Context, gameID uint, limit int) ([]domain.Attempt, error) {
	var records []entities.GameAttempt
	err := r.db.WithContext(ctx).
		Preload("Game").
		Where("game_id = ? AND status = ?", gameID, string(domain.StatusCompleted)).
		Order("attempt_count ASC").
		Order("completed_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, dbError(ctx, err, "find leaderboard")
	}

	attempts := make([]domain.Attempt, 0, len(records))
	for _, rec := range records {
		attempts = append(attempts, *rec.ToDomain())
	}
	return attempts, nil
}

func (r *GormAttemptRepository) CountByGame(ctx context.Context, gameID uint) (int64, int64, error) {
	var total, completed int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&entities.GameAttempt{}).Where("game_id = ?", gameID).Count(&total).Error; err != nil {
		return 0, 0, dbError(ctx, err, "count attempts")
	}
	if err := db.Model(&entities.GameAttempt{}).
		Where("game_id = ? AND status = ?", gameID, string(domain.StatusCompleted)).
		Count(&completed).Error; err != nil {
		return 0, 0, dbError(ctx, err, "count completed attempts")
	}
	return total, completed, nil
}

func (r *GormAttemptRepository) BestAttemptCount(ctx context.Context, gameID uint) (*int, error) {
	var result struct {
		Best *int
	}
	err := r.db.WithContext(ctx).
		Model(&entities.GameAttempt{}).
		Select("MIN(attempt_count) AS best").
		Where("game_id = ? AND status = ?", gameID, string(domain.StatusCompleted)).
		Scan(&result).Error
	if err != nil {
		return nil, dbError(ctx, err, "find best attempt count")
	}
	return result.Best, nil
}
