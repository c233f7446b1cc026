package client

import "context"

// QueueMessage is one received message plus the receipt needed to ack it.
type QueueMessage struct {
	Body    string
	Receipt string
}

func (m QueueMessage) GetReceipt() string {
	return m.Receipt
}

type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	ReceiveMessages() (<-chan QueueMessage, error)
	DeleteMessage(receipt string) error
	Ping() error
	Stop() error
	GetQueueName() string
}
