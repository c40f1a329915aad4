package game

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/infrastructure/database/entities"
	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

// GormRepository persists games and their ordered milestones via GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	var record entities.Game
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, dbError(ctx, err, "find game by slug")
	}
	return record.ToDomain(), nil
}

func (r *GormRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Game{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, dbError(ctx, err, "check game slug")
	}
	return count > 0, nil
}

// Insert writes the game and its rows atomically. A unique violation on the
// game row means the slug is taken; one on the link rows means a repeated
// milestone or position.
func (r *GormRepository) Insert(ctx context.Context, g *domain.Game, rows []domain.GameMilestone) error {
	record := entities.Game{
		Slug:      g.Slug,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateSlug
			}
			return err
		}

		links := make([]entities.GameMilestone, 0, len(rows))
		for _, row := range rows {
			links = append(links, entities.GameMilestone{
				GameID:       record.ID,
				MilestoneID:  row.Milestone.ID,
				CorrectOrder: row.CorrectOrder,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicatePosition
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) || errors.Is(err, domain.ErrDuplicatePosition) {
			return err
		}
		return dbError(ctx, err, "insert game")
	}

	g.ID = record.ID
	return nil
}

func (r *GormRepository) FindMilestones(ctx context.Context, gameID uint) ([]domain.GameMilestone, error) {
	var records []entities.GameMilestone
	err := r.db.WithContext(ctx).
		Preload("Milestone").
		Where("game_id = ?", gameID).
		Order("correct_order ASC").
		Find(&records).Error
	if err != nil {
		return nil, dbError(ctx, err, "find game milestones")
	}

	rows := make([]domain.GameMilestone, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.ToDomain())
	}
	return rows, nil
}

func (r *GormRepository) FindRecent(ctx context.Context, limit int) ([]domain.Game, error) {
	var records []entities.Game
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, dbError(ctx, err, "find recent games")
	}

	games := make([]domain.Game, 0, len(records))
	for _, rec := range records {
		games = append(games, *rec.ToDomain())
	}
	return games, nil
}

func dbError(ctx context.Context, err error, message string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
		message, err, "4f1d8a36-c2e7-4b90-a5d3-8e6b0c1f7a24")
}
