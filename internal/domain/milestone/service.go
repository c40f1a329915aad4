package milestone

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

const maxSearchTermLength = 100

// Service describes the catalog operations used by games and the search endpoint.
type Service interface {
	Count(ctx context.Context) (int64, error)
	FindRandom(ctx context.Context, n int) ([]Milestone, error)
	Search(ctx context.Context, term string) ([]View, error)
	SeedIfEmpty(ctx context.Context, milestones []Milestone) (int, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the catalog service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "milestone-service").Logger(),
	}
}

func (s *service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "count milestones")
	}
	return count, nil
}

func (s *service) FindRandom(ctx context.Context, n int) ([]Milestone, error) {
	if n <= 0 {
		return nil, nil
	}
	items, err := s.repo.FindRandom(ctx, n)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "pick random milestones")
	}
	return items, nil
}

func (s *service) Search(ctx context.Context, term string) ([]View, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"search term must not be empty", nil, "5b0c2e71-6c1e-4d0e-9a55-1f3f4d8b2a10")
	}
	if len(term) > maxSearchTermLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"search term is too long", nil, "0f6a3c1d-2b7e-4f59-8d3a-6c4b9e2f1a07")
	}

	items, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "search milestones")
	}

	views := make([]View, 0, len(items))
	for _, m := range items {
		views = append(views, m.View())
	}
	return views, nil
}

// SeedIfEmpty loads milestones only when the catalog has no rows. It returns the number inserted.
func (s *service) SeedIfEmpty(ctx context.Context, milestones []Milestone) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "count milestones before seeding")
	}
	if count > 0 {
		s.log.Debug().Int64("rows", count).Msg("milestone catalog already seeded")
		return 0, nil
	}
	if err := s.repo.CreateBatch(ctx, milestones); err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "seed milestones")
	}
	s.log.Info().Int("rows", len(milestones)).Msg("seeded milestone catalog")
	return len(milestones), nil
}
