package requests

import "strings"

// PlayerRequest is the optional body of POST /games and POST /games/{slug}/start.
type PlayerRequest struct {
	PlayerName *string `json:"playerName" binding:"omitempty,max=100"`
}

// NormalizedPlayerName trims the name and treats blank as absent.
func (r PlayerRequest) NormalizedPlayerName() *string {
	if r.PlayerName == nil {
		return nil
	}
	name := strings.TrimSpace(*r.PlayerName)
	if name == "" {
		return nil
	}
	return &name
}

// SubmitAttemptRequest models POST /games/attempts/submit input.
type SubmitAttemptRequest struct {
	AttemptID           uint   `json:"attemptId" binding:"required"`
	OrderedMilestoneIDs []uint `json:"orderedMilestoneIds" binding:"required,len=5,dive,required"`
}

// SlugURI binds the {slug} path segment.
type SlugURI struct {
	Slug string `uri:"slug" json:"slug" binding:"required,slug"`
}

// LimitQuery binds an optional ?limit= parameter.
type LimitQuery struct {
	Limit *int `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
}

// SearchQuery binds GET /milestones/search parameters.
type SearchQuery struct {
	Q string `form:"q" json:"q" binding:"required,max=100"`
}
