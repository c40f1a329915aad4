package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/requests"
	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/responses"
)

// MilestoneHandler serves catalog lookups.
type MilestoneHandler struct {
	service milestone.Service
}

// NewMilestoneHandler constructs the handler.
func NewMilestoneHandler(service milestone.Service) *MilestoneHandler {
	return &MilestoneHandler{service: service}
}

// Search handles GET /milestones/search
// @Summary Search the milestone catalog
// @Description Case-insensitive match on title or description. Dates are never returned.
// @Tags Milestones
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} milestone.View
// @Failure 400 {object} responses.ErrorResponse
// @Router /milestones/search [get]
func (h *MilestoneHandler) Search(c *gin.Context) {
	var query requests.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	views, err := h.service.Search(c.Request.Context(), query.Q)
	if err != nil {
		responses.HandleError(c, err, "failed to search milestones")
		return
	}

	c.JSON(http.StatusOK, views)
}
