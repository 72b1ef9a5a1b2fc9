package notification

import (
	"context"

	"github.com/muhammadheryan/foodhive/model"
	"github.com/muhammadheryan/foodhive/thirdparty/mailer"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	OrderPlaced(ctx context.Context, event *model.OrderPlacedMessage) error
}

type notificationAppImpl struct {
	mailer mailer.Mailer
}

func NewNotificationApp(m mailer.Mailer) NotificationApp {
	return &notificationAppImpl{mailer: m}
}

// OrderPlaced e-mails the listing owner about a new order.
func (s *notificationAppImpl) OrderPlaced(ctx context.Context, event *model.OrderPlacedMessage) error {
	mail, err := mailer.OrderPlacedMail(event)
	if err != nil {
		// nothing to retry
		logger.Warn("[OrderPlaced] skip notification", zap.String("order_id", event.OrderID), zap.String("error", err.Error()))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.mailer.Send(mail); err != nil {
		logger.Error("[OrderPlaced] send mail", zap.String("order_id", event.OrderID), zap.String("error", err.Error()))
		return err
	}

	logger.Info("[OrderPlaced] owner notified", zap.String("order_id", event.OrderID), zap.String("owner", event.OwnerEmail))
	return nil
}
