package rabbitmq

import (
	"fmt"

	"github.com/muhammadheryan/foodhive/constant"
	"github.com/rabbitmq/amqp091-go"
)

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology declares the order events exchange and binds the
// order placed queue to it. Both sides call it so start order does not matter.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		constant.OrderEventsExchange, // name
		amqp091.ExchangeDirect,       // type
		true,                         // durable
		false,                        // auto-delete
		false,                        // internal
		false,                        // no-wait
		nil,                          // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		constant.OrderPlacedQueue, // name
		true,                      // durable
		false,                     // auto-delete
		false,                     // exclusive
		false,                     // no-wait
		nil,                       // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		constant.OrderPlacedQueue,    // queue name
		constant.OrderPlacedKey,      // routing key
		constant.OrderEventsExchange, // exchange
		false,                        // no-wait
		nil,                          // arguments
	)
}
