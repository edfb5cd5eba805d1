package main

import (
	"context"

	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
	"gearguard/seeders"

	"go.uber.org/zap"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()
	ctx := context.Background()

	pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.Up(cfg.Postgres.DSN); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	if err := seeders.Seed(ctx, pool, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}
