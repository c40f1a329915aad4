package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/handlers"
)

func registerGameRoutes(router gin.IRoutes, handler *handlers.GameHandler) {
	router.POST("", handler.Create)
	router.GET("", handler.ListRecent)
	router.POST("/attempts/submit", handler.Submit)
	router.POST("/:slug/start", handler.Start)
	router.GET("/:slug", handler.Get)
	router.GET("/:slug/leaderboard", handler.Leaderboard)
	router.GET("/:slug/stats", handler.Stats)
}
