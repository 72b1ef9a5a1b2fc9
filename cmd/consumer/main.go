package main

import (
	"context"
	"os/signal"
	"syscall"

	notificationapp "github.com/muhammadheryan/foodhive/application/notification"
	"github.com/muhammadheryan/foodhive/cmd/config"
	"github.com/muhammadheryan/foodhive/thirdparty/mailer"
	"github.com/muhammadheryan/foodhive/thirdparty/rabbitmq"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"go.uber.org/zap"
)

// consumer e-mails listing owners when one of their foods is bought.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "consumer"); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	NotificationApp := notificationapp.NewNotificationApp(mailer.NewSMTPMailer(cfg.SMTP))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx, NotificationApp.OrderPlaced)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("order placed consumer running")

	select {
	case <-ctx.Done():
		logger.Info("shutting down consumer")
	case <-done:
		logger.Warn("consumer stopped")
	}
}
