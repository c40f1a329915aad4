package milestone

import "context"

// Repository exposes read access to the milestone catalog plus the bulk insert used for seeding.
type Repository interface {
	Count(ctx context.Context) (int64, error)
	// FindRandom returns up to n distinct milestones chosen uniformly at random.
	FindRandom(ctx context.Context, n int) ([]Milestone, error)
	// Search matches term case-insensitively against title or description.
	Search(ctx context.Context, term string) ([]Milestone, error)
	CreateBatch(ctx context.Context, milestones []Milestone) error
}
