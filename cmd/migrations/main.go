package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/quickpoll/internal/config"
)

// Usage:
//
//	migrations                        apply every *.up.sql
//	migrations 003_create_votes.down  run a single file
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.Database.DSN(), postgres.PoolConfig{})
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	if len(os.Args) < 2 {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
		logger.Info("all migrations applied")
		return
	}

	fileName, err := postgres.MigrateOne(ctx, db, os.Args[1])
	if err != nil {
		logger.Fatal("migrate", zap.String("name", os.Args[1]), zap.Error(err))
	}
	logger.Info("migration file executed", zap.String("file", fileName))
}
