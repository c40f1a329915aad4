package game

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/infrastructure/database"
	"github.com/milestone-mania/game-api/internal/infrastructure/database/entities"
	milestonerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/milestone"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "games.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(context.Background(), db, zerolog.Nop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedMilestones(t *testing.T, db *gorm.DB) []milestone.Milestone {
	t.Helper()
	repo := milestonerepo.NewGormRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.CreateBatch(ctx, []milestone.Milestone{
		{Title: "A", ActualDate: milestone.Date(1900, time.January, 1)},
		{Title: "B", ActualDate: milestone.Date(1910, time.January, 1)},
		{Title: "C", ActualDate: milestone.Date(1920, time.January, 1)},
		{Title: "D", ActualDate: milestone.Date(1930, time.January, 1)},
		{Title: "E", ActualDate: milestone.Date(1940, time.January, 1)},
		{Title: "F", ActualDate: milestone.Date(1950, time.January, 1)},
	}))
	items, err := repo.FindRandom(ctx, 6)
	require.NoError(t, err)
	require.Len(t, items, 6)
	return domain.Canonicalize(items)
}

func newGame(slug string, at time.Time) *domain.Game {
	name := domain.NamePrefix + slug
	return &domain.Game{Slug: slug, Name: &name, CreatedAt: at}
}

func TestGormRepositoryInsertAndFind(t *testing.T) {
	db := setupDB(t)
	ms := seedMilestones(t, db)
	repo := NewGormRepository(db)
	ctx := context.Background()

	g := newGame("calmly-jump-otter", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, g, domain.BuildRows(ms[:5])))
	require.NotZero(t, g.ID)

	found, err := repo.FindBySlug(ctx, "calmly-jump-otter")
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)
	require.NotNil(t, found.Name)
	assert.Equal(t, "Timeline Challenge: calmly-jump-otter", *found.Name)

	exists, err := repo.ExistsBySlug(ctx, "calmly-jump-otter")
	require.NoError(t, err)
	assert.True(t, exists)

	rows, err := repo.FindMilestones(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Equal(t, i+1, row.CorrectOrder)
		assert.Equal(t, ms[i].ID, row.Milestone.ID)
		assert.Equal(t, ms[i].Title, row.Milestone.Title)
		if i > 0 {
			assert.False(t, row.Milestone.ActualDate.Before(rows[i-1].Milestone.ActualDate))
		}
	}

	_, err = repo.FindBySlug(ctx, "missing-slug")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGormRepositoryDuplicateSlug(t *testing.T) {
	db := setupDB(t)
	ms := seedMilestones(t, db)
	repo := NewGormRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newGame("same-slug-here", time.Now().UTC()), domain.BuildRows(ms[:5])))

	err := repo.Insert(ctx, newGame("same-slug-here", time.Now().UTC()), domain.BuildRows(ms[1:6]))
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)

	var links int64
	require.NoError(t, db.Model(&entities.GameMilestone{}).Count(&links).Error)
	assert.EqualValues(t, 5, links)
}

func TestGormRepositoryDuplicatePositionRollsBack(t *testing.T) {
	db := setupDB(t)
	ms := seedMilestones(t, db)
	repo := NewGormRepository(db)
	ctx := context.Background()

	rows := domain.BuildRows(ms[:5])
	rows[4].CorrectOrder = 4

	err := repo.Insert(ctx, newGame("broken-positions", time.Now().UTC()), rows)
	assert.ErrorIs(t, err, domain.ErrDuplicatePosition)

	exists, err := repo.ExistsBySlug(ctx, "broken-positions")
	require.NoError(t, err)
	assert.False(t, exists, "game row must be rolled back with its links")
}

func TestGormRepositoryFindRecent(t *testing.T) {
	db := setupDB(t)
	ms := seedMilestones(t, db)
	repo := NewGormRepository(db)
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, newGame("older-game", base), domain.BuildRows(ms[:5])))
	require.NoError(t, repo.Insert(ctx, newGame("newer-game", base.Add(time.Hour)), domain.BuildRows(ms[1:6])))

	games, err := repo.FindRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "newer-game", games[0].Slug)
}

func TestGormAttemptRepositoryOptimisticLocking(t *testing.T) {
	db := setupDB(t)
	ms := seedMilestones(t, db)
	games := NewGormRepository(db)
	attempts := NewGormAttemptRepository(db)
	ctx := context.Background()

	g := newGame("locking-game", time.Now().UTC())
	require.NoError(t, games.Insert(ctx, g, domain.BuildRows(ms[:5])))

	a := domain.NewAttempt(g, nil, time.Now().UTC())
	require.NoError(t, attempts.Insert(ctx, a))
	require.NotZero(t, a.ID)

	first, err := attempts.FindByIDAndStatus(ctx, a.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, "locking-game", first.GameSlug)
	second := *first

	first.RecordIncorrect()
	require.NoError(t, attempts.Update(ctx, first))
	assert.EqualValues(t, 1, first.Version)

	second.RecordIncorrect()
	assert.ErrorIs(t, attempts.Update(ctx, &second), domain.ErrVersionConflict)

	stored, err := attempts.FindByIDAndStatus(ctx, a.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AttemptCount)
	assert.EqualValues(t, 1, stored.Version)

	stored.Complete(time.Now().UTC())
	require.NoError(t, attempts.Update(ctx, stored))

	_, err = attempts.FindByIDAndStatus(ctx, a.ID, domain.StatusInProgress)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	exists, err := attempts.ExistsByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGormAttemptRepositoryLeaderboardAndStats(t *testing.T) {
	db := setupDB(t)
	ms := seedMilestones(t, db)
	games := NewGormRepository(db)
	attempts := NewGormAttemptRepository(db)
	ctx := context.Background()

	g := newGame("ranked-game", time.Now().UTC())
	require.NoError(t, games.Insert(ctx, g, domain.BuildRows(ms[:5])))

	base := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	complete := func(name string, incorrect int, at time.Time) {
		player := name
		a := domain.NewAttempt(g, &player, base)
		require.NoError(t, attempts.Insert(ctx, a))
		for i := 0; i < incorrect; i++ {
			a.RecordIncorrect()
			require.NoError(t, attempts.Update(ctx, a))
		}
		a.Complete(at)
		require.NoError(t, attempts.Update(ctx, a))
	}

	complete("slow", 3, base.Add(time.Minute))
	complete("late-best", 0, base.Add(3*time.Minute))
	complete("early-best", 0, base.Add(2*time.Minute))
	require.NoError(t, attempts.Insert(ctx, domain.NewAttempt(g, nil, base)))

	board, err := attempts.FindLeaderboard(ctx, g.ID, 10)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "early-best", *board[0].PlayerName)
	assert.Equal(t, "late-best", *board[1].PlayerName)
	assert.Equal(t, "slow", *board[2].PlayerName)
	assert.Equal(t, 4, board[2].AttemptCount)

	total, completed, err := attempts.CountByGame(ctx, g.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.EqualValues(t, 3, completed)

	best, err := attempts.BestAttemptCount(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 1, *best)

	other := newGame("empty-game", time.Now().UTC())
	require.NoError(t, games.Insert(ctx, other, domain.BuildRows(ms[1:6])))
	best, err = attempts.BestAttemptCount(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, best)
}
