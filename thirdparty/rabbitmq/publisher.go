package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	"github.com/rabbitmq/amqp091-go"
)

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg *model.OrderPlacedMessage) error
	Close() error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, msg *model.OrderPlacedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		constant.OrderEventsExchange, // exchange
		constant.OrderPlacedKey,      // routing key
		false,                        // mandatory
		false,                        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.OrderID,
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
