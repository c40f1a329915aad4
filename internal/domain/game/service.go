package game

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/domain/slug"
)

const (
	DefaultMaxSlugAttempts = 10

	MaxListLimit = 100

	successMessage = "Congratulations! You placed every milestone in the right order."
	failureMessage = "Not quite. Try again!"
)

// Service describes the game-session operations.
type Service interface {
	CreateNewGame(ctx context.Context, playerName *string) (*AttemptView, error)
	StartGameFromSlug(ctx context.Context, gameSlug string, playerName *string) (*AttemptView, error)
	SubmitAttempt(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	GetGameBySlug(ctx context.Context, gameSlug string) (*GameView, error)
	Leaderboard(ctx context.Context, gameSlug string, limit int) ([]LeaderboardEntry, error)
	Stats(ctx context.Context, gameSlug string) (*Stats, error)
	RecentGames(ctx context.Context, limit int) ([]GameSummary, error)
}

// Settings tunes the service. Zero values fall back to defaults.
type Settings struct {
	MaxSlugAttempts int
	Now             func() time.Time
	// PlayerLabel renders a player name for logs.
	PlayerLabel func(name *string) string
}

type service struct {
	catalog  milestone.Service
	games    Repository
	attempts AttemptRepository
	slugs    slug.Generator
	settings Settings
	log      zerolog.Logger
	tracer   trace.Tracer
}

// NewService wires the game service with the catalog, storage and slug generator.
func NewService(
	catalog milestone.Service,
	games Repository,
	attempts AttemptRepository,
	slugs slug.Generator,
	settings Settings,
	log zerolog.Logger,
) Service {
	if settings.MaxSlugAttempts < 1 {
		settings.MaxSlugAttempts = DefaultMaxSlugAttempts
	}
	if settings.Now == nil {
		settings.Now = func() time.Time { return time.Now().UTC() }
	}
	if settings.PlayerLabel == nil {
		settings.PlayerLabel = func(name *string) string {
			if name == nil {
				return "anonymous"
			}
			return "[REDACTED]"
		}
	}
	return &service{
		catalog:  catalog,
		games:    games,
		attempts: attempts,
		slugs:    slugs,
		settings: settings,
		log:      log.With().Str("component", "game-service").Logger(),
		tracer:   otel.Tracer("game-service"),
	}
}

func (s *service) CreateNewGame(ctx context.Context, playerName *string) (*AttemptView, error) {
	ctx, span := s.tracer.Start(ctx, "game.CreateNewGame")
	defer span.End()

	available, err := s.catalog.Count(ctx)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "count milestones"))
	}
	if available < MilestonesPerGame {
		return nil, s.fail(span, insufficientMilestones(ctx, available))
	}

	picked, err := s.catalog.FindRandom(ctx, MilestonesPerGame)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "pick milestones"))
	}
	if len(picked) < MilestonesPerGame {
		return nil, s.fail(span, insufficientMilestones(ctx, int64(len(picked))))
	}

	rows := BuildRows(Canonicalize(picked))
	g, err := s.insertWithUniqueSlug(ctx, rows)
	if err != nil {
		return nil, s.fail(span, err)
	}
	span.SetAttributes(attribute.String("game.slug", g.Slug))

	attempt := NewAttempt(g, playerName, s.settings.Now())
	if err := s.attempts.Insert(ctx, attempt); err != nil {
		return nil, s.fail(span, internal(ctx, err, "create attempt"))
	}

	s.log.Info().
		Str("slug", g.Slug).
		Uint("game_id", g.ID).
		Uint("attempt_id", attempt.ID).
		Str("player", s.settings.PlayerLabel(playerName)).
		Msg("created game")

	return newAttemptView(attempt, rows), nil
}

// insertWithUniqueSlug generates slugs until one is stored. The unique index is
// the authority; the existence check only skips known collisions early.
func (s *service) insertWithUniqueSlug(ctx context.Context, rows []GameMilestone) (*Game, error) {
	for attempt := 1; attempt <= s.settings.MaxSlugAttempts; attempt++ {
		candidate, err := s.slugs.Generate()
		if err != nil {
			return nil, internal(ctx, err, "generate slug")
		}

		exists, err := s.games.ExistsBySlug(ctx, candidate)
		if err != nil {
			return nil, internal(ctx, err, "check slug")
		}
		if exists {
			s.log.Debug().Str("slug", candidate).Int("attempt", attempt).Msg("slug already taken")
			continue
		}

		name := NamePrefix + candidate
		g := &Game{
			Slug:      candidate,
			Name:      &name,
			CreatedAt: s.settings.Now(),
		}
		err = s.games.Insert(ctx, g, rows)
		if err == nil {
			for i := range rows {
				rows[i].GameID = g.ID
			}
			return g, nil
		}
		if errors.Is(err, ErrDuplicateSlug) {
			s.log.Debug().Str("slug", candidate).Int("attempt", attempt).Msg("slug collided on insert")
			continue
		}
		return nil, internal(ctx, err, "persist game")
	}

	s.log.Error().Int("attempts", s.settings.MaxSlugAttempts).Msg("slug generation exhausted")
	return nil, internal(ctx, ErrSlugExhausted, "create game")
}

func (s *service) StartGameFromSlug(ctx context.Context, gameSlug string, playerName *string) (*AttemptView, error) {
	ctx, span := s.tracer.Start(ctx, "game.StartGameFromSlug", trace.WithAttributes(attribute.String("game.slug", gameSlug)))
	defer span.End()

	g, err := s.findGame(ctx, gameSlug)
	if err != nil {
		return nil, s.fail(span, err)
	}

	rows, err := s.games.FindMilestones(ctx, g.ID)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "load game milestones"))
	}

	attempt := NewAttempt(g, playerName, s.settings.Now())
	if err := s.attempts.Insert(ctx, attempt); err != nil {
		return nil, s.fail(span, internal(ctx, err, "create attempt"))
	}

	s.log.Info().
		Str("slug", g.Slug).
		Uint("attempt_id", attempt.ID).
		Str("player", s.settings.PlayerLabel(playerName)).
		Msg("started attempt")
	return newAttemptView(attempt, rows), nil
}

func (s *service) SubmitAttempt(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "game.SubmitAttempt", trace.WithAttributes(attribute.Int64("attempt.id", int64(req.AttemptID))))
	defer span.End()

	if len(req.OrderedMilestoneIDs) != MilestonesPerGame {
		return nil, s.fail(span, validationError(ctx, "exactly 5 milestone ids are required"))
	}

	attempt, err := s.attempts.FindByIDAndStatus(ctx, req.AttemptID, StatusInProgress)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, s.fail(span, internal(ctx, err, "load attempt"))
		}
		exists, existsErr := s.attempts.ExistsByID(ctx, req.AttemptID)
		if existsErr != nil {
			return nil, s.fail(span, internal(ctx, existsErr, "check attempt"))
		}
		if exists {
			return nil, s.fail(span, invalidAttemptState(ctx, "attempt is already completed"))
		}
		return nil, s.fail(span, attemptNotFound(ctx, req.AttemptID))
	}

	rows, err := s.games.FindMilestones(ctx, attempt.GameID)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "load game milestones"))
	}
	if !SameMilestones(rows, req.OrderedMilestoneIDs) {
		return nil, s.fail(span, invalidAttemptState(ctx, "submitted milestones do not match this game"))
	}

	correct := IsChronological(rows, req.OrderedMilestoneIDs)
	if correct {
		attempt.Complete(s.settings.Now())
	} else {
		attempt.RecordIncorrect()
	}

	if err := s.attempts.Update(ctx, attempt); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			s.log.Warn().Uint("attempt_id", attempt.ID).Msg("concurrent submission lost the race")
			return nil, s.fail(span, invalidAttemptState(ctx, "attempt was updated by another submission, reload and retry").MarkRetryable())
		}
		return nil, s.fail(span, internal(ctx, err, "update attempt"))
	}

	span.SetAttributes(attribute.Bool("attempt.correct", correct), attribute.Int("attempt.count", attempt.AttemptCount))

	result := &SubmitResult{
		Correct:       correct,
		AttemptNumber: attempt.AttemptCount,
		GameSlug:      attempt.GameSlug,
	}
	if correct {
		result.Message = successMessage
	} else {
		result.IncorrectCount = attempt.AttemptCount - 1
		result.Message = failureMessage
	}
	return result, nil
}

func (s *service) GetGameBySlug(ctx context.Context, gameSlug string) (*GameView, error) {
	ctx, span := s.tracer.Start(ctx, "game.GetGameBySlug", trace.WithAttributes(attribute.String("game.slug", gameSlug)))
	defer span.End()

	g, err := s.findGame(ctx, gameSlug)
	if err != nil {
		return nil, s.fail(span, err)
	}
	rows, err := s.games.FindMilestones(ctx, g.ID)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "load game milestones"))
	}

	return &GameView{
		ID:         g.ID,
		Slug:       g.Slug,
		Name:       g.Name,
		CreatedAt:  g.CreatedAt,
		Milestones: projectMilestones(rows),
	}, nil
}

func (s *service) Leaderboard(ctx context.Context, gameSlug string, limit int) ([]LeaderboardEntry, error) {
	ctx, span := s.tracer.Start(ctx, "game.Leaderboard", trace.WithAttributes(attribute.String("game.slug", gameSlug)))
	defer span.End()

	if limit < 1 || limit > MaxListLimit {
		return nil, s.fail(span, validationError(ctx, "limit must be between 1 and 100"))
	}

	g, err := s.findGame(ctx, gameSlug)
	if err != nil {
		return nil, s.fail(span, err)
	}

	attempts, err := s.attempts.FindLeaderboard(ctx, g.ID, limit)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "load leaderboard"))
	}

	entries := make([]LeaderboardEntry, 0, len(attempts))
	for _, a := range attempts {
		if a.CompletedAt == nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:         len(entries) + 1,
			PlayerName:   a.PlayerName,
			AttemptCount: a.AttemptCount,
			CompletedAt:  *a.CompletedAt,
		})
	}
	return entries, nil
}

func (s *service) Stats(ctx context.Context, gameSlug string) (*Stats, error) {
	ctx, span := s.tracer.Start(ctx, "game.Stats", trace.WithAttributes(attribute.String("game.slug", gameSlug)))
	defer span.End()

	g, err := s.findGame(ctx, gameSlug)
	if err != nil {
		return nil, s.fail(span, err)
	}

	total, completed, err := s.attempts.CountByGame(ctx, g.ID)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "count attempts"))
	}
	best, err := s.attempts.BestAttemptCount(ctx, g.ID)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "find best attempt"))
	}

	return &Stats{
		GameSlug:          g.Slug,
		TotalAttempts:     total,
		CompletedAttempts: completed,
		BestAttemptCount:  best,
	}, nil
}

func (s *service) RecentGames(ctx context.Context, limit int) ([]GameSummary, error) {
	ctx, span := s.tracer.Start(ctx, "game.RecentGames")
	defer span.End()

	if limit < 1 || limit > MaxListLimit {
		return nil, s.fail(span, validationError(ctx, "limit must be between 1 and 100"))
	}

	games, err := s.games.FindRecent(ctx, limit)
	if err != nil {
		return nil, s.fail(span, internal(ctx, err, "list recent games"))
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, GameSummary{
			ID:        g.ID,
			Slug:      g.Slug,
			Name:      g.Name,
			CreatedAt: g.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *service) findGame(ctx context.Context, gameSlug string) (*Game, error) {
	g, err := s.games.FindBySlug(ctx, gameSlug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, gameNotFound(ctx, gameSlug)
		}
		return nil, internal(ctx, err, "load game")
	}
	return g, nil
}

func (s *service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
