package main

import (
	"context"
	"time"

	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/cmd/database"
	"github.com/muhammadheryan/foodhive/migration"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "migrate"); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := migration.Migrate(ctx, db)
	if err != nil {
		logger.Fatal("migration failed", zap.Strings("applied", applied), zap.Error(err))
	}
	logger.Info("migrations done", zap.Int("applied", len(applied)))
}
