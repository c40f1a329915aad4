package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/milestone-mania/game-api/internal/config"
	"github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/domain/slug"
	"github.com/milestone-mania/game-api/internal/infrastructure/database"
	"github.com/milestone-mania/game-api/internal/infrastructure/logger"
	"github.com/milestone-mania/game-api/internal/infrastructure/observability"
	"github.com/milestone-mania/game-api/internal/infrastructure/telemetry"
	gamerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/game"
	milestonerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/milestone"
	"github.com/milestone-mania/game-api/internal/interfaces/httpserver"
)

// @title Milestone Mania Game API
// @version 1.0
// @description Chronological ordering game: create shareable games, start attempts and submit orderings
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(newDatabaseConfig(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.Migrate(ctx, db, cfg.DBDriver, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	milestoneService := milestone.NewService(milestonerepo.NewGormRepository(db), log)
	if cfg.SeedMilestones {
		if _, err := milestoneService.SeedIfEmpty(ctx, milestone.DefaultCatalog()); err != nil {
			log.Fatal().Err(err).Msg("seed milestone catalog")
		}
	}

	gameRepository := gamerepo.NewGormRepository(db)
	attemptRepository := gamerepo.NewGormAttemptRepository(db)
	gameService := game.NewService(
		milestoneService,
		gameRepository,
		attemptRepository,
		slug.NewGenerator(),
		newGameSettings(cfg),
		log,
	)

	httpServer := httpserver.New(cfg, log, gameService, milestoneService, database.NewHealthChecker(db))
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		SQLitePath:      cfg.SQLitePath,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGameSettings(cfg *config.Config) game.Settings {
	sanitizer := telemetry.NewSanitizer(telemetry.PIILevel(cfg.LogPIILevel), cfg.ServiceName)
	return game.Settings{
		MaxSlugAttempts: cfg.SlugMaxAttempts,
		PlayerLabel:     sanitizer.PlayerName,
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
