package milestone

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/infrastructure/database/entities"
	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

const maxSearchResults = 50

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormRepository persists the milestone catalog via GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Milestone{}).Count(&count).Error; err != nil {
		return 0, dbError(ctx, err, "count milestones")
	}
	return count, nil
}

// FindRandom relies on ORDER BY RANDOM(), which both PostgreSQL and SQLite support.
func (r *GormRepository) FindRandom(ctx context.Context, n int) ([]domain.Milestone, error) {
	var records []entities.Milestone
	if err := r.db.WithContext(ctx).Order("RANDOM()").Limit(n).Find(&records).Error; err != nil {
		return nil, dbError(ctx, err, "select random milestones")
	}
	return toDomain(records), nil
}

func (r *GormRepository) Search(ctx context.Context, term string) ([]domain.Milestone, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	var records []entities.Milestone
	err := r.db.WithContext(ctx).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("actual_date ASC").
		Order("id ASC").
		Limit(maxSearchResults).
		Find(&records).Error
	if err != nil {
		return nil, dbError(ctx, err, "search milestones")
	}
	return toDomain(records), nil
}

func (r *GormRepository) CreateBatch(ctx context.Context, milestones []domain.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}
	records := make([]entities.Milestone, 0, len(milestones))
	for _, m := range milestones {
		records = append(records, entities.NewMilestone(m))
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&records, 100).Error; err != nil {
		return dbError(ctx, err, "insert milestones")
	}
	return nil
}

func toDomain(records []entities.Milestone) []domain.Milestone {
	items := make([]domain.Milestone, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.ToDomain())
	}
	return items
}

func dbError(ctx context.Context, err error, message string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
		message, err, "9e4b2d71-3a6c-4f8e-b1d5-7c0a2e9f4b63")
}
