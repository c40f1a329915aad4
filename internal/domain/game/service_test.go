package game_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/domain/milestone"
	gamerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/game"
	milestonerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/milestone"
	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

var fixedNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

type sequenceGenerator struct {
	mu    sync.Mutex
	slugs []string
	calls int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.slugs[g.calls%len(g.slugs)]
	g.calls++
	return s, nil
}

type fixture struct {
	service  game.Service
	games    *gamerepo.InMemoryRepository
	attempts *gamerepo.InMemoryAttemptRepository
	slugs    *sequenceGenerator
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	catalog  []milestone.Milestone
	games    game.Repository
	attempts game.AttemptRepository
}

func withCatalog(items []milestone.Milestone) fixtureOption {
	return func(c *fixtureConfig) { c.catalog = items }
}

func defaultCatalog() []milestone.Milestone {
	return []milestone.Milestone{
		{Title: "E", ActualDate: milestone.Date(2000, time.January, 1)},
		{Title: "A", ActualDate: milestone.Date(1800, time.January, 1)},
		{Title: "D", ActualDate: milestone.Date(1950, time.January, 1)},
		{Title: "B", ActualDate: milestone.Date(1850, time.January, 1)},
		{Title: "C", ActualDate: milestone.Date(1900, time.January, 1)},
	}
}

func newFixture(t *testing.T, slugs []string, opts ...fixtureOption) *fixture {
	t.Helper()
	cfg := &fixtureConfig{catalog: defaultCatalog()}
	for _, opt := range opts {
		opt(cfg)
	}

	catalogRepo := milestonerepo.NewInMemoryRepository()
	require.NoError(t, catalogRepo.CreateBatch(context.Background(), cfg.catalog))
	catalog := milestone.NewService(catalogRepo, zerolog.Nop())

	games := gamerepo.NewInMemoryRepository()
	attempts := gamerepo.NewInMemoryAttemptRepository(games)
	var gameStore game.Repository = games
	var attemptStore game.AttemptRepository = attempts
	if cfg.games != nil {
		gameStore = cfg.games
	}
	if cfg.attempts != nil {
		attemptStore = cfg.attempts
	}

	gen := &sequenceGenerator{slugs: slugs}
	svc := game.NewService(catalog, gameStore, attemptStore, gen, game.Settings{
		MaxSlugAttempts: 3,
		Now:             func() time.Time { return fixedNow },
	}, zerolog.Nop())

	return &fixture{service: svc, games: games, attempts: attempts, slugs: gen}
}

func (f *fixture) chronologicalIDs(t *testing.T, slug string) []uint {
	t.Helper()
	g, err := f.games.FindBySlug(context.Background(), slug)
	require.NoError(t, err)
	rows, err := f.games.FindMilestones(context.Background(), g.ID)
	require.NoError(t, err)
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Milestone.ID)
	}
	return ids
}

func reversed(ids []uint) []uint {
	out := make([]uint, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestCreateNewGame(t *testing.T) {
	f := newFixture(t, []string{"boldly-chase-lynx"})
	ctx := context.Background()

	view, err := f.service.CreateNewGame(ctx, strPtr("Alice"))
	require.NoError(t, err)

	assert.Equal(t, "boldly-chase-lynx", view.GameSlug)
	assert.Equal(t, game.StatusInProgress, view.Status)
	assert.Equal(t, 1, view.AttemptCount)
	assert.Nil(t, view.CompletedAt)
	assert.Equal(t, fixedNow, view.CreatedAt)
	require.NotNil(t, view.PlayerName)
	assert.Equal(t, "Alice", *view.PlayerName)
	require.Len(t, view.Milestones, game.MilestonesPerGame)

	titles := make([]string, 0, len(view.Milestones))
	for _, m := range view.Milestones {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, titles, "milestones are stored in chronological order")

	g, err := f.games.FindBySlug(ctx, "boldly-chase-lynx")
	require.NoError(t, err)
	require.NotNil(t, g.Name)
	assert.Equal(t, "Timeline Challenge: boldly-chase-lynx", *g.Name)

	rows, err := f.games.FindMilestones(ctx, g.ID)
	require.NoError(t, err)
	for i, row := range rows {
		assert.Equal(t, i+1, row.CorrectOrder)
	}
}

func TestCreateNewGameInsufficientMilestones(t *testing.T) {
	f := newFixture(t, []string{"boldly-chase-lynx"}, withCatalog(defaultCatalog()[:4]))

	_, err := f.service.CreateNewGame(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInsufficientMilestones)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnavailable))
}

func TestCreateNewGameRetriesTakenSlug(t *testing.T) {
	f := newFixture(t, []string{"first-slug-one", "first-slug-one", "second-slug-two"})
	ctx := context.Background()

	_, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)

	view, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "second-slug-two", view.GameSlug)
	assert.Equal(t, 3, f.slugs.calls)
}

func TestCreateNewGameSlugExhausted(t *testing.T) {
	f := newFixture(t, []string{"only-slug-ever"})
	ctx := context.Background()

	_, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)

	_, err = f.service.CreateNewGame(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrSlugExhausted)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInternal))
	assert.Equal(t, 4, f.slugs.calls, "one success plus three exhausted attempts")
}

// racingGameRepository reports slugs as free but rejects the first insert as
// if another request had claimed the slug in between.
type racingGameRepository struct {
	*gamerepo.InMemoryRepository
	collisions int
}

func (r *racingGameRepository) ExistsBySlug(context.Context, string) (bool, error) {
	return false, nil
}

func (r *racingGameRepository) Insert(ctx context.Context, g *game.Game, rows []game.GameMilestone) error {
	if r.collisions > 0 {
		r.collisions--
		return fmt.Errorf("insert game: %w", game.ErrDuplicateSlug)
	}
	return r.InMemoryRepository.Insert(ctx, g, rows)
}

func TestCreateNewGameRetriesUniqueViolation(t *testing.T) {
	racing := &racingGameRepository{InMemoryRepository: gamerepo.NewInMemoryRepository(), collisions: 1}
	f := newFixture(t, []string{"lost-race-slug", "won-race-slug"}, func(c *fixtureConfig) {
		c.games = racing
		c.attempts = gamerepo.NewInMemoryAttemptRepository(racing.InMemoryRepository)
	})

	view, err := f.service.CreateNewGame(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "won-race-slug", view.GameSlug)
}

func TestStartGameFromSlug(t *testing.T) {
	f := newFixture(t, []string{"gently-share-panda"})
	ctx := context.Background()

	first, err := f.service.CreateNewGame(ctx, strPtr("Alice"))
	require.NoError(t, err)

	second, err := f.service.StartGameFromSlug(ctx, first.GameSlug, strPtr("Bob"))
	require.NoError(t, err)

	assert.NotEqual(t, first.AttemptID, second.AttemptID)
	assert.Equal(t, first.GameSlug, second.GameSlug)
	assert.Equal(t, first.Milestones, second.Milestones)
	assert.Equal(t, 1, second.AttemptCount)
	assert.Equal(t, "Bob", *second.PlayerName)

	_, err = f.service.StartGameFromSlug(ctx, "no-such-game", nil)
	assert.ErrorIs(t, err, game.ErrGameNotFound)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestSubmitAttemptScenario(t *testing.T) {
	f := newFixture(t, []string{"wisely-order-heron"})
	ctx := context.Background()

	view, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)
	correct := f.chronologicalIDs(t, view.GameSlug)
	wrong := reversed(correct)

	for i := 1; i <= 2; i++ {
		result, err := f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: wrong})
		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.Equal(t, i+1, result.AttemptNumber)
		assert.Equal(t, i, result.IncorrectCount)
		assert.Equal(t, view.GameSlug, result.GameSlug)
		assert.NotEmpty(t, result.Message)
	}

	result, err := f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: correct})
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 3, result.AttemptNumber)
	assert.Equal(t, 0, result.IncorrectCount)

	_, err = f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: correct})
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidAttemptState)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
	assert.False(t, platformerrors.IsRetryable(err))

	stats, err := f.service.Stats(ctx, view.GameSlug)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalAttempts)
	assert.EqualValues(t, 1, stats.CompletedAttempts)
	require.NotNil(t, stats.BestAttemptCount)
	assert.Equal(t, 3, *stats.BestAttemptCount)
}

func TestSubmitAttemptErrors(t *testing.T) {
	f := newFixture(t, []string{"rarely-guess-moose"})
	ctx := context.Background()

	view, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)
	correct := f.chronologicalIDs(t, view.GameSlug)

	tests := []struct {
		name     string
		req      game.SubmitRequest
		sentinel error
		errType  platformerrors.ErrorType
	}{
		{
			name:     "too few ids",
			req:      game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: correct[:4]},
			sentinel: game.ErrValidation,
			errType:  platformerrors.ErrorTypeValidation,
		},
		{
			name:     "unknown attempt",
			req:      game.SubmitRequest{AttemptID: 9999, OrderedMilestoneIDs: correct},
			sentinel: game.ErrAttemptNotFound,
			errType:  platformerrors.ErrorTypeNotFound,
		},
		{
			name:     "foreign milestone",
			req:      game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: append(append([]uint{}, correct[:4]...), 4242)},
			sentinel: game.ErrInvalidAttemptState,
			errType:  platformerrors.ErrorTypeConflict,
		},
		{
			name:     "duplicated milestone",
			req:      game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: append(append([]uint{}, correct[:4]...), correct[0])},
			sentinel: game.ErrInvalidAttemptState,
			errType:  platformerrors.ErrorTypeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.SubmitAttempt(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, platformerrors.IsErrorType(err, tt.errType))
		})
	}

	stored, err := f.attempts.FindByIDAndStatus(ctx, view.AttemptID, game.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AttemptCount, "rejected submissions must not count")
}

func TestSubmitAttemptAcceptsEitherOrderForEqualDates(t *testing.T) {
	catalog := []milestone.Milestone{
		{Title: "A", ActualDate: milestone.Date(1900, time.January, 1)},
		{Title: "B1", ActualDate: milestone.Date(1950, time.May, 5)},
		{Title: "B2", ActualDate: milestone.Date(1950, time.May, 5)},
		{Title: "C", ActualDate: milestone.Date(1960, time.January, 1)},
		{Title: "D", ActualDate: milestone.Date(1970, time.January, 1)},
	}

	for _, swap := range []bool{false, true} {
		t.Run(fmt.Sprintf("swap=%v", swap), func(t *testing.T) {
			f := newFixture(t, []string{"evenly-split-tie"}, withCatalog(catalog))
			ctx := context.Background()

			view, err := f.service.CreateNewGame(ctx, nil)
			require.NoError(t, err)
			ids := f.chronologicalIDs(t, view.GameSlug)
			if swap {
				ids[1], ids[2] = ids[2], ids[1]
			}

			result, err := f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: ids})
			require.NoError(t, err)
			assert.True(t, result.Correct)
		})
	}
}

// interferingAttemptRepository lets another writer bump the version between
// the read and the write of a submission.
type interferingAttemptRepository struct {
	*gamerepo.InMemoryAttemptRepository
	once sync.Once
}

func (r *interferingAttemptRepository) Update(ctx context.Context, a *game.Attempt) error {
	r.once.Do(func() {
		other, err := r.InMemoryAttemptRepository.FindByIDAndStatus(ctx, a.ID, game.StatusInProgress)
		if err == nil {
			other.RecordIncorrect()
			_ = r.InMemoryAttemptRepository.Update(ctx, other)
		}
	})
	return r.InMemoryAttemptRepository.Update(ctx, a)
}

func TestSubmitAttemptVersionConflictIsRetryable(t *testing.T) {
	games := gamerepo.NewInMemoryRepository()
	inner := gamerepo.NewInMemoryAttemptRepository(games)
	interfering := &interferingAttemptRepository{InMemoryAttemptRepository: inner}

	f := newFixture(t, []string{"barely-miss-crane"}, func(c *fixtureConfig) {
		c.games = games
		c.attempts = interfering
	})
	f.games = games
	ctx := context.Background()

	view, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)
	ids := f.chronologicalIDs(t, view.GameSlug)

	_, err = f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: ids})
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidAttemptState)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
	assert.True(t, platformerrors.IsRetryable(err))

	stored, err := inner.FindByIDAndStatus(ctx, view.AttemptID, game.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AttemptCount, "only the competing write landed")
	assert.EqualValues(t, 1, stored.Version)
}

func TestConcurrentCorrectSubmissionsCompleteOnce(t *testing.T) {
	f := newFixture(t, []string{"swiftly-race-gecko"})
	ctx := context.Background()

	view, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)
	ids := f.chronologicalIDs(t, view.GameSlug)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: ids})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, game.ErrInvalidAttemptState):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestGetGameBySlug(t *testing.T) {
	f := newFixture(t, []string{"openly-view-koala"})
	ctx := context.Background()

	created, err := f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)

	first, err := f.service.GetGameBySlug(ctx, created.GameSlug)
	require.NoError(t, err)
	second, err := f.service.GetGameBySlug(ctx, created.GameSlug)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, created.Milestones, first.Milestones)
	assert.Equal(t, fixedNow, first.CreatedAt)

	_, err = f.service.GetGameBySlug(ctx, "missing-game")
	assert.ErrorIs(t, err, game.ErrGameNotFound)
}

func TestLeaderboardAndRecentGames(t *testing.T) {
	f := newFixture(t, []string{"proudly-lead-tiger", "quietly-trail-snail"})
	ctx := context.Background()

	view, err := f.service.CreateNewGame(ctx, strPtr("Ann"))
	require.NoError(t, err)
	correct := f.chronologicalIDs(t, view.GameSlug)

	other, err := f.service.StartGameFromSlug(ctx, view.GameSlug, strPtr("Ben"))
	require.NoError(t, err)
	_, err = f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: other.AttemptID, OrderedMilestoneIDs: reversed(correct)})
	require.NoError(t, err)
	_, err = f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: other.AttemptID, OrderedMilestoneIDs: correct})
	require.NoError(t, err)
	_, err = f.service.SubmitAttempt(ctx, game.SubmitRequest{AttemptID: view.AttemptID, OrderedMilestoneIDs: correct})
	require.NoError(t, err)

	board, err := f.service.Leaderboard(ctx, view.GameSlug, 10)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Ann", *board[0].PlayerName)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Ben", *board[1].PlayerName)
	assert.Equal(t, 2, board[1].AttemptCount)

	_, err = f.service.Leaderboard(ctx, view.GameSlug, 0)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	_, err = f.service.CreateNewGame(ctx, nil)
	require.NoError(t, err)

	recent, err := f.service.RecentGames(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	_, err = f.service.RecentGames(ctx, 101)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}
