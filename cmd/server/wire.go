//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/milestone-mania/game-api/internal/config"
	"github.com/milestone-mania/game-api/internal/domain/game"
	"github.com/milestone-mania/game-api/internal/domain/milestone"
	"github.com/milestone-mania/game-api/internal/domain/slug"
	"github.com/milestone-mania/game-api/internal/infrastructure/database"
	"github.com/milestone-mania/game-api/internal/infrastructure/logger"
	gamerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/game"
	milestonerepo "github.com/milestone-mania/game-api/internal/infrastructure/repository/milestone"
	"github.com/milestone-mania/game-api/internal/interfaces/httpserver"
)

var milestoneSet = wire.NewSet(
	milestonerepo.NewGormRepository,
	wire.Bind(new(milestone.Repository), new(*milestonerepo.GormRepository)),
	milestone.NewService,
)

var gameSet = wire.NewSet(
	gamerepo.NewGormRepository,
	wire.Bind(new(game.Repository), new(*gamerepo.GormRepository)),
	gamerepo.NewGormAttemptRepository,
	wire.Bind(new(game.AttemptRepository), new(*gamerepo.GormAttemptRepository)),
	slug.NewGenerator,
	wire.Bind(new(slug.Generator), new(*slug.VocabularyGenerator)),
	newGameSettings,
	game.NewService,
)

// BuildApplication assembles the game service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		database.NewHealthChecker,
		milestoneSet,
		gameSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newGormDB(ctx context.Context, cfg *config.Config, dbCfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(dbCfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db, cfg.DBDriver, log); err != nil {
		return nil, err
	}
	return db, nil
}
