package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milestone-mania/game-api/internal/config"
	"github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/domain/slug"
	"github.com/milestone-mania/game-api/internal/infrastructure/database"
	gamerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/game"
	milestonerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/milestone"
)

func newTestServer(t *testing.T) *HttpServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "server.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		ServiceName:             "game-api",
		Environment:             "test",
		CORSAllowedOrigins:      []string{"*"},
		LeaderboardDefaultLimit: 10,
	}
	log := zerolog.Nop()
	catalog := milestone.NewService(milestonerepo.NewInMemoryRepository(), log)
	games := gamerepo.NewInMemoryRepository()
	gameService := game.NewService(catalog, games, gamerepo.NewInMemoryAttemptRepository(games), slug.NewGenerator(), game.Settings{}, log)
	return New(cfg, log, gameService, catalog, database.NewHealthChecker(db))
}

func TestCoreRoutes(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/", "/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestCreateGameWithEmptyCatalogIsUnavailable(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/games", nil)
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestFullGameFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()
	catalogRepo := milestonerepo.NewInMemoryRepository()
	catalog := milestone.NewService(catalogRepo, log)
	_, err := catalog.SeedIfEmpty(context.Background(), milestone.DefaultCatalog())
	require.NoError(t, err)

	games := gamerepo.NewInMemoryRepository()
	gameService := game.NewService(catalog, games, gamerepo.NewInMemoryAttemptRepository(games), slug.NewGenerator(), game.Settings{}, log)
	server := New(&config.Config{ServiceName: "game-api", LeaderboardDefaultLimit: 10}, log, gameService, catalog, nil)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/games", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "actualDate")
	assert.NotContains(t, w.Body.String(), "ActualDate")

	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
