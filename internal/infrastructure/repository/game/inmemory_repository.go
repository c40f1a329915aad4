package game

import (
	"context"
	"sort"
	"sync"

	domain "github.com/milestone-mania/game-api/internal/domain/game"
)

// InMemoryRepository is a thread-safe game store useful for demos/tests. It
// enforces the same uniqueness rules as the database schema.
type InMemoryRepository struct {
	mu     sync.RWMutex
	games  map[uint]domain.Game
	bySlug map[string]uint
	rows   map[uint][]domain.GameMilestone
	nextID uint
	rowID  uint
}

// NewInMemoryRepository returns an empty store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		games:  make(map[uint]domain.Game),
		bySlug: make(map[string]uint),
		rows:   make(map[uint][]domain.GameMilestone),
		nextID: 1,
		rowID:  1,
	}
}

func (r *InMemoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	g := r.games[id]
	return &g, nil
}

func (r *InMemoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bySlug[slug]
	return ok, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, g *domain.Game, rows []domain.GameMilestone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlug[g.Slug]; taken {
		return domain.ErrDuplicateSlug
	}
	milestones := make(map[uint]struct{}, len(rows))
	positions := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		if _, dup := milestones[row.Milestone.ID]; dup {
			return domain.ErrDuplicatePosition
		}
		if _, dup := positions[row.CorrectOrder]; dup {
			return domain.ErrDuplicatePosition
		}
		milestones[row.Milestone.ID] = struct{}{}
		positions[row.CorrectOrder] = struct{}{}
	}

	stored := *g
	stored.ID = r.nextID
	r.nextID++

	links := make([]domain.GameMilestone, 0, len(rows))
	for _, row := range rows {
		row.ID = r.rowID
		r.rowID++
		row.GameID = stored.ID
		links = append(links, row)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].CorrectOrder < links[j].CorrectOrder })

	r.games[stored.ID] = stored
	r.bySlug[stored.Slug] = stored.ID
	r.rows[stored.ID] = links
	g.ID = stored.ID
	return nil
}

func (r *InMemoryRepository) FindMilestones(ctx context.Context, gameID uint) ([]domain.GameMilestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := r.rows[gameID]
	out := make([]domain.GameMilestone, len(rows))
	copy(out, rows)
	return out, nil
}

func (r *InMemoryRepository) FindRecent(ctx context.Context, limit int) ([]domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]domain.Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID > games[j].ID
		}
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	if limit < len(games) {
		games = games[:limit]
	}
	return games, nil
}

func (r *InMemoryRepository) slugFor(gameID uint) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.games[gameID].Slug
}

// InMemoryAttemptRepository stores attempts with version checks on update.
type InMemoryAttemptRepository struct {
	mu       sync.RWMutex
	games    *InMemoryRepository
	attempts map[uint]domain.Attempt
	nextID   uint
}

// NewInMemoryAttemptRepository returns an empty attempt store resolving slugs through games.
func NewInMemoryAttemptRepository(games *InMemoryRepository) *InMemoryAttemptRepository {
	return &InMemoryAttemptRepository{
		games:    games,
		attempts: make(map[uint]domain.Attempt),
		nextID:   1,
	}
}

func (r *InMemoryAttemptRepository) FindByIDAndStatus(ctx context.Context, id uint, status domain.Status) (*domain.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.attempts[id]
	if !ok || a.Status != status {
		return nil, domain.ErrNotFound
	}
	return r.hydrate(a), nil
}

func (r *InMemoryAttemptRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.attempts[id]
	return ok, nil
}

func (r *InMemoryAttemptRepository) Insert(ctx context.Context, a *domain.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	a.Version = 0
	r.attempts[a.ID] = *a
	return nil
}

func (r *InMemoryAttemptRepository) Update(ctx context.Context, a *domain.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.attempts[a.ID]
	if !ok || stored.Version != a.Version {
		return domain.ErrVersionConflict
	}
	stored.Status = a.Status
	stored.AttemptCount = a.AttemptCount
	stored.CompletedAt = a.CompletedAt
	stored.Version++
	r.attempts[a.ID] = stored
	a.Version = stored.Version
	return nil
}

func (r *InMemoryAttemptRepository) FindLeaderboard(ctx context.Context, gameID uint, limit int) ([]domain.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var completed []domain.Attempt
	for _, a := range r.attempts {
		if a.GameID == gameID && a.Status == domain.StatusCompleted {
			completed = append(completed, *r.hydrate(a))
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		a, b := completed[i], completed[j]
		if a.AttemptCount != b.AttemptCount {
			return a.AttemptCount < b.AttemptCount
		}
		if !a.CompletedAt.Equal(*b.CompletedAt) {
			return a.CompletedAt.Before(*b.CompletedAt)
		}
		return a.ID < b.ID
	})
	if limit < len(completed) {
		completed = completed[:limit]
	}
	return completed, nil
}

func (r *InMemoryAttemptRepository) CountByGame(ctx context.Context, gameID uint) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total, completed int64
	for _, a := range r.attempts {
		if a.GameID != gameID {
			continue
		}
		total++
		if a.Status == domain.StatusCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func (r *InMemoryAttemptRepository) BestAttemptCount(ctx context.Context, gameID uint) (*int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *int
	for _, a := range r.attempts {
		if a.GameID != gameID || a.Status != domain.StatusCompleted {
			continue
		}
		if best == nil || a.AttemptCount < *best {
			count := a.AttemptCount
			best = &count
		}
	}
	return best, nil
}

func (r *InMemoryAttemptRepository) hydrate(a domain.Attempt) *domain.Attempt {
	a.GameSlug = r.games.slugFor(a.GameID)
	return &a
}
