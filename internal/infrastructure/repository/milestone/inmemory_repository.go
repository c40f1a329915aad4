package milestone

import (
	"context"
	"crypto/rand"
	"math/big"
	"sort"
	"strings"
	"sync"

	domain "github.com/milestone-mania/game-api/internal/domain/milestone"
)

// InMemoryRepository is a thread-safe catalog useful for demos/tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []domain.Milestone
	nextID uint
}

// NewInMemoryRepository returns an empty catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// FindRandom draws n distinct milestones using a partial Fisher-Yates shuffle.
func (r *InMemoryRepository) FindRandom(ctx context.Context, n int) ([]domain.Milestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pool := make([]domain.Milestone, len(r.items))
	copy(pool, r.items)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool)-i)))
		if err != nil {
			return nil, err
		}
		k := i + int(j.Int64())
		pool[i], pool[k] = pool[k], pool[i]
	}
	return pool[:n], nil
}

func (r *InMemoryRepository) Search(ctx context.Context, term string) ([]domain.Milestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	var matches []domain.Milestone
	for _, m := range r.items {
		if strings.Contains(strings.ToLower(m.Title), needle) || strings.Contains(strings.ToLower(m.Description), needle) {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ActualDate.Before(matches[j].ActualDate)
	})
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches, nil
}

func (r *InMemoryRepository) CreateBatch(ctx context.Context, milestones []domain.Milestone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range milestones {
		m.ID = r.nextID
		r.nextID++
		r.items = append(r.items, m)
	}
	return nil
}
