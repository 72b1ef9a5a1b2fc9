package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	foodapp "github.com/muhammadheryan/foodhive/application/food"
	orderapp "github.com/muhammadheryan/foodhive/application/order"
	userapp "github.com/muhammadheryan/foodhive/application/user"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/cmd/database"
	redisclient "github.com/muhammadheryan/foodhive/cmd/redis"
	_ "github.com/muhammadheryan/foodhive/docs"
	foodRepo "github.com/muhammadheryan/foodhive/repository/food"
	orderRepo "github.com/muhammadheryan/foodhive/repository/order"
	redisRepo "github.com/muhammadheryan/foodhive/repository/redis"
	txRepo "github.com/muhammadheryan/foodhive/repository/tx"
	userRepo "github.com/muhammadheryan/foodhive/repository/user"
	"github.com/muhammadheryan/foodhive/thirdparty/rabbitmq"
	"github.com/muhammadheryan/foodhive/transport"
	"github.com/muhammadheryan/foodhive/utils/logger"
	validatorx "github.com/muhammadheryan/foodhive/utils/validator"
	"go.uber.org/zap"
)

// @title FoodHive API
// @version 1.0
// @description Food listing and purchase service.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// the cache is optional, a nil client turns it into a no-op
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	var publisher rabbitmq.OrderPublisher
	p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	FoodRepo := foodRepo.NewFoodRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// Initialize application layers
	FoodApp := foodapp.NewFoodApp(cfg, TxRepo, FoodRepo, RedisRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, FoodRepo, OrderRepo, UserRepo, RedisRepo, publisher)
	UserApp := userapp.NewUserApp(cfg, UserRepo)

	httpTransport := transport.NewTransport(cfg.Server.RequestTimeout, FoodApp, OrderApp, UserApp)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
