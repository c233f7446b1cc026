package client

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string

	mu         sync.Mutex
	deliveries map[uint64]amqp.Delivery
	stopCh     chan struct{}
}

var _ QueueClient = (*RabbitMqClient)(nil)

func NewRabbitMqClient(url, user, password, queueName string) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", user, password, url)
	connection, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		connection.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &RabbitMqClient{
		connection: connection,
		channel:    channel,
		queueName:  queueName,
		deliveries: make(map[uint64]amqp.Delivery),
		stopCh:     make(chan struct{}),
	}, nil
}

func (c *RabbitMqClient) SendMessage(ctx context.Context, messageBody string) error {
	return c.channel.PublishWithContext(
		ctx,
		"", // default exchange
		c.queueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         []byte(messageBody),
		},
	)
}

// ReceiveMessages starts a consumer and forwards deliveries until Stop is
// called. Messages stay unacked until DeleteMessage is called with the
// receipt, so unacked messages are redelivered after a reconnect.
func (c *RabbitMqClient) ReceiveMessages() (<-chan QueueMessage, error) {
	deliveries, err := c.channel.Consume(
		c.queueName,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start consumer on queue %s: %w", c.queueName, err)
	}

	out := make(chan QueueMessage)
	go func() {
		defer close(out)
		for {
			select {
			case <-c.stopCh:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				c.mu.Lock()
				c.deliveries[delivery.DeliveryTag] = delivery
				c.mu.Unlock()
				out <- QueueMessage{
					Body:    string(delivery.Body),
					Receipt: strconv.FormatUint(delivery.DeliveryTag, 10),
				}
			}
		}
	}()
	return out, nil
}

func (c *RabbitMqClient) DeleteMessage(receipt string) error {
	tag, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid message receipt %q: %w", receipt, err)
	}

	c.mu.Lock()
	delivery, found := c.deliveries[tag]
	delete(c.deliveries, tag)
	c.mu.Unlock()
	if !found {
		return fmt.Errorf("no in-flight message with receipt %q", receipt)
	}
	return delivery.Ack(false)
}

func (c *RabbitMqClient) Ping() error {
	if c.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed")
	}
	return nil
}

func (c *RabbitMqClient) Stop() error {
	close(c.stopCh)
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}
