package milestone

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/infrastructure/database"
)

func setupRepository(t *testing.T) *GormRepository {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "milestones.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(context.Background(), db, zerolog.Nop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormRepository(db)
}

func sampleCatalog() []domain.Milestone {
	return []domain.Milestone{
		{Title: "Moon Landing", Description: "Apollo 11 touches down", ActualDate: domain.Date(1969, time.July, 20)},
		{Title: "Berlin Wall Falls", Description: "Crossings open", ActualDate: domain.Date(1989, time.November, 9)},
		{Title: "First Flight", Description: "Powered flight at Kitty Hawk", ActualDate: domain.Date(1903, time.December, 17)},
		{Title: "Sputnik", Description: "First satellite reaches orbit", ActualDate: domain.Date(1957, time.October, 4)},
		{Title: "Discount 100% off", Description: "Literal percent sign", ActualDate: domain.Date(2000, time.January, 1)},
		{Title: "Web Announced", Description: "World_Wide_Web goes public", ActualDate: domain.Date(1991, time.August, 6)},
	}
}

func TestGormRepositoryCountAndRandom(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateBatch(ctx, sampleCatalog()))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)

	for i := 0; i < 10; i++ {
		items, err := repo.FindRandom(ctx, 5)
		require.NoError(t, err)
		require.Len(t, items, 5)

		seen := make(map[uint]struct{})
		for _, m := range items {
			_, dup := seen[m.ID]
			assert.False(t, dup, "random selection must be distinct")
			seen[m.ID] = struct{}{}
		}
	}

	items, err := repo.FindRandom(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestGormRepositoryPreservesCalendarDate(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.CreateBatch(ctx, sampleCatalog()[:1]))

	items, err := repo.FindRandom(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	y, m, d := items[0].ActualDate.Date()
	assert.Equal(t, 1969, y)
	assert.Equal(t, time.July, m)
	assert.Equal(t, 20, d)
}

func TestGormRepositorySearch(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.CreateBatch(ctx, sampleCatalog()))

	tests := []struct {
		name   string
		term   string
		titles []string
	}{
		{name: "title case insensitive", term: "moon", titles: []string{"Moon Landing"}},
		{name: "description match", term: "ORBIT", titles: []string{"Sputnik"}},
		{name: "ordered by date", term: "first", titles: []string{"First Flight", "Sputnik"}},
		{name: "percent is literal", term: "100%", titles: []string{"Discount 100% off"}},
		{name: "underscore is literal", term: "world_wide", titles: []string{"Web Announced"}},
		{name: "no match", term: "dinosaur", titles: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			var titles []string
			for _, m := range items {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}
