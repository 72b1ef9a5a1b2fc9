package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// OrderPlacedHandler processes one decoded order.placed event.
type OrderPlacedHandler func(ctx context.Context, msg *model.OrderPlacedMessage) error

// acknowledger is the subset of amqp091.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(host string, port int, user, password string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel}, nil
}

// Start consumes order.placed events until ctx is done or the channel closes.
// The returned channel is closed when the consume loop exits.
func (c *Consumer) Start(ctx context.Context, handler OrderPlacedHandler) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		constant.OrderPlacedQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				dispatch(ctx, msg.Body, msg.Redelivered, &msg, handler)
			}
		}
	}()

	return done, nil
}

// dispatch decodes body and hands it to handler. Malformed bodies are dropped,
// a failing handler gets the message requeued once.
func dispatch(ctx context.Context, body []byte, redelivered bool, ack acknowledger, handler OrderPlacedHandler) {
	var event model.OrderPlacedMessage
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("[Consumer] failed to unmarshal message", zap.String("error", err.Error()))
		_ = ack.Ack(false)
		return
	}

	if err := handler(ctx, &event); err != nil {
		logger.Error("[Consumer] handler failed",
			zap.String("order_id", event.OrderID),
			zap.Bool("redelivered", redelivered),
			zap.String("error", err.Error()))
		_ = ack.Nack(false, !redelivered)
		return
	}

	_ = ack.Ack(false)
	logger.Info("[Consumer] order placed event handled", zap.String("order_id", event.OrderID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
