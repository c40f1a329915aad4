package game

import (
	"time"

	"github.com/milestone-mania/game-api/internal/domain/milestone"
)

// MilestonesPerGame is the fixed number of events in every game.
const MilestonesPerGame = 5

// NamePrefix is prepended to the slug to name a freshly minted game.
const NamePrefix = "Timeline Challenge: "

// Game is an immutable template of five events shared by slug.
type Game struct {
	ID        uint
	Slug      string
	Name      *string
	CreatedAt time.Time
}

// GameMilestone places one catalog milestone at a position in a game's correct order.
type GameMilestone struct {
	ID           uint
	GameID       uint
	Milestone    milestone.Milestone
	CorrectOrder int
}

// Attempt is one player's progress through a game.
type Attempt struct {
	ID           uint
	GameID       uint
	GameSlug     string
	PlayerName   *string
	Status       Status
	AttemptCount int
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Version      int64
}

// NewAttempt starts a fresh attempt at count one.
func NewAttempt(g *Game, playerName *string, now time.Time) *Attempt {
	return &Attempt{
		GameID:       g.ID,
		GameSlug:     g.Slug,
		PlayerName:   playerName,
		Status:       StatusInProgress,
		AttemptCount: 1,
		CreatedAt:    now,
	}
}

// Complete marks the attempt solved. completedAt is set exactly once.
func (a *Attempt) Complete(now time.Time) {
	a.Status = StatusCompleted
	completed := now
	a.CompletedAt = &completed
}

// RecordIncorrect counts a failed submission.
func (a *Attempt) RecordIncorrect() {
	a.AttemptCount++
}

// AttemptView is returned when an attempt starts.
type AttemptView struct {
	AttemptID    uint             `json:"attemptId"`
	GameSlug     string           `json:"gameSlug"`
	PlayerName   *string          `json:"playerName"`
	Status       Status           `json:"status"`
	AttemptCount int              `json:"attemptCount"`
	CreatedAt    time.Time        `json:"createdAt"`
	CompletedAt  *time.Time       `json:"completedAt"`
	Milestones   []milestone.View `json:"milestones"`
}

// GameView describes a game without revealing milestone dates.
type GameView struct {
	ID         uint             `json:"id"`
	Slug       string           `json:"slug"`
	Name       *string          `json:"name"`
	CreatedAt  time.Time        `json:"createdAt"`
	Milestones []milestone.View `json:"milestones"`
}

// GameSummary is a game listing entry.
type GameSummary struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitRequest carries a player's ordering of the five milestones.
type SubmitRequest struct {
	AttemptID           uint
	OrderedMilestoneIDs []uint
}

// SubmitResult reports the outcome of a submission.
type SubmitResult struct {
	Correct        bool   `json:"correct"`
	AttemptNumber  int    `json:"attemptNumber"`
	IncorrectCount int    `json:"incorrectCount"`
	GameSlug       string `json:"gameSlug"`
	Message        string `json:"message"`
}

// LeaderboardEntry is a completed attempt ranked within one game.
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	PlayerName   *string   `json:"playerName"`
	AttemptCount int       `json:"attemptCount"`
	CompletedAt  time.Time `json:"completedAt"`
}

// Stats aggregates attempts for one game.
type Stats struct {
	GameSlug          string `json:"gameSlug"`
	TotalAttempts     int64  `json:"totalAttempts"`
	CompletedAttempts int64  `json:"completedAttempts"`
	BestAttemptCount  *int   `json:"bestAttemptCount"`
}

func projectMilestones(rows []GameMilestone) []milestone.View {
	views := make([]milestone.View, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.Milestone.View())
	}
	return views
}

func newAttemptView(a *Attempt, rows []GameMilestone) *AttemptView {
	return &AttemptView{
		AttemptID:    a.ID,
		GameSlug:     a.GameSlug,
		PlayerName:   a.PlayerName,
		Status:       a.Status,
		AttemptCount: a.AttemptCount,
		CreatedAt:    a.CreatedAt,
		CompletedAt:  a.CompletedAt,
		Milestones:   projectMilestones(rows),
	}
}
