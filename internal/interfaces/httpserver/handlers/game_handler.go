package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/infrastructure/metrics"
	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/requests"
	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/responses"
)

const defaultRecentGamesLimit = 20

// GameHandler exposes HTTP entrypoints for the game API.
type GameHandler struct {
	service          game.Service
	leaderboardLimit int
}

// NewGameHandler constructs the handler.
func NewGameHandler(service game.Service, leaderboardLimit int) *GameHandler {
	if leaderboardLimit < 1 || leaderboardLimit > game.MaxListLimit {
		leaderboardLimit = 10
	}
	return &GameHandler{
		service:          service,
		leaderboardLimit: leaderboardLimit,
	}
}

// Create handles POST /games
// @Summary Create a new game
// @Description Picks five random milestones, mints a shareable slug and starts the first attempt
// @Tags Games
// @Accept json
// @Produce json
// @Param request body requests.PlayerRequest false "Optional player name"
// @Success 201 {object} game.AttemptView
// @Failure 400 {object} responses.ErrorResponse
// @Failure 503 {object} responses.ErrorResponse
// @Router /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	var req requests.PlayerRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	view, err := h.service.CreateNewGame(c.Request.Context(), req.NormalizedPlayerName())
	if err != nil {
		responses.HandleError(c, err, "failed to create game")
		return
	}

	metrics.RecordGameCreated()
	c.JSON(http.StatusCreated, view)
}

// Start handles POST /games/:slug/start
// @Summary Start an attempt on an existing game
// @Description Begins a new attempt on the shared game identified by slug
// @Tags Games
// @Accept json
// @Produce json
// @Param slug path string true "Game slug"
// @Param request body requests.PlayerRequest false "Optional player name"
// @Success 200 {object} game.AttemptView
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{slug}/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	var uri requests.SlugURI
	if err := c.ShouldBindUri(&uri); err != nil {
		responses.HandleValidationError(c, err)
		return
	}
	var req requests.PlayerRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	view, err := h.service.StartGameFromSlug(c.Request.Context(), uri.Slug, req.NormalizedPlayerName())
	if err != nil {
		responses.HandleError(c, err, "failed to start game")
		return
	}

	metrics.RecordAttemptStarted()
	c.JSON(http.StatusOK, view)
}

// Submit handles POST /games/attempts/submit
// @Summary Submit an ordering
// @Description Scores the submitted order of the five milestones for an attempt
// @Tags Games
// @Accept json
// @Produce json
// @Param request body requests.SubmitAttemptRequest true "Attempt id and ordered milestone ids"
// @Success 200 {object} game.SubmitResult
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /games/attempts/submit [post]
func (h *GameHandler) Submit(c *gin.Context) {
	var req requests.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	result, err := h.service.SubmitAttempt(c.Request.Context(), game.SubmitRequest{
		AttemptID:           req.AttemptID,
		OrderedMilestoneIDs: req.OrderedMilestoneIDs,
	})
	if err != nil {
		if errors.Is(err, game.ErrInvalidAttemptState) {
			metrics.RecordSubmission("conflict")
		}
		responses.HandleError(c, err, "failed to submit attempt")
		return
	}

	if result.Correct {
		metrics.RecordSubmission("correct")
	} else {
		metrics.RecordSubmission("incorrect")
	}
	c.JSON(http.StatusOK, result)
}

// Get handles GET /games/:slug
// @Summary Get a game by slug
// @Description Returns the game and its five milestones without dates
// @Tags Games
// @Produce json
// @Param slug path string true "Game slug"
// @Success 200 {object} game.GameView
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{slug} [get]
func (h *GameHandler) Get(c *gin.Context) {
	var uri requests.SlugURI
	if err := c.ShouldBindUri(&uri); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	view, err := h.service.GetGameBySlug(c.Request.Context(), uri.Slug)
	if err != nil {
		responses.HandleError(c, err, "failed to get game")
		return
	}

	c.JSON(http.StatusOK, view)
}

// Leaderboard handles GET /games/:slug/leaderboard
// @Summary Per-game leaderboard
// @Description Completed attempts ranked by fewest tries, then earliest completion
// @Tags Games
// @Produce json
// @Param slug path string true "Game slug"
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {array} game.LeaderboardEntry
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{slug}/leaderboard [get]
func (h *GameHandler) Leaderboard(c *gin.Context) {
	var uri requests.SlugURI
	if err := c.ShouldBindUri(&uri); err != nil {
		responses.HandleValidationError(c, err)
		return
	}
	limit, ok := bindLimit(c, h.leaderboardLimit)
	if !ok {
		return
	}

	entries, err := h.service.Leaderboard(c.Request.Context(), uri.Slug, limit)
	if err != nil {
		responses.HandleError(c, err, "failed to load leaderboard")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Stats handles GET /games/:slug/stats
// @Summary Game statistics
// @Tags Games
// @Produce json
// @Param slug path string true "Game slug"
// @Success 200 {object} game.Stats
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{slug}/stats [get]
func (h *GameHandler) Stats(c *gin.Context) {
	var uri requests.SlugURI
	if err := c.ShouldBindUri(&uri); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), uri.Slug)
	if err != nil {
		responses.HandleError(c, err, "failed to load stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListRecent handles GET /games
// @Summary Recently created games
// @Tags Games
// @Produce json
// @Param limit query int false "Maximum games" default(20)
// @Success 200 {array} game.GameSummary
// @Failure 400 {object} responses.ErrorResponse
// @Router /games [get]
func (h *GameHandler) ListRecent(c *gin.Context) {
	limit, ok := bindLimit(c, defaultRecentGamesLimit)
	if !ok {
		return
	}

	games, err := h.service.RecentGames(c.Request.Context(), limit)
	if err != nil {
		responses.HandleError(c, err, "failed to list games")
		return
	}

	c.JSON(http.StatusOK, games)
}

// bindOptionalJSON accepts an empty body as an empty object.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func bindLimit(c *gin.Context, fallback int) (int, bool) {
	var query requests.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleValidationError(c, err)
		return 0, false
	}
	if query.Limit == nil {
		return fallback, true
	}
	return *query.Limit, true
}
