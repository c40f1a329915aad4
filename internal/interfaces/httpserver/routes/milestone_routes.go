package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/handlers"
)

func registerMilestoneRoutes(router gin.IRoutes, handler *handlers.MilestoneHandler) {
	router.GET("/search", handler.Search)
}
