package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/observability/metrics"
	"github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/queue/handlers"
	"github.com/knstl/qstaking-service/internal/services"
)

type Queues struct {
	ContractEventQueueClient client.QueueClient
	InstructionQueueClient   client.QueueClient
	Handlers                 *handlers.QueueHandler
	processingTimeout        time.Duration
}

// NewInstructionSender opens the outbound instruction queue. It is created
// before the service layer because the services publish into it.
func NewInstructionSender(cfg config.QueueConfig) (client.QueueClient, error) {
	return client.NewRabbitMqClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, cfg.InstructionQueueName,
	)
}

func New(cfg config.QueueConfig, instructionSender client.QueueClient, service *services.Services) *Queues {
	contractEventQueueClient, err := client.NewRabbitMqClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, cfg.ContractEventQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating ContractEventQueueClient")
	}
	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		ContractEventQueueClient: contractEventQueueClient,
		InstructionQueueClient:   instructionSender,
		Handlers:                 handlers,
		processingTimeout:        time.Duration(cfg.QueueProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	startQueueMessageProcessing(
		q.ContractEventQueueClient, q.Handlers.ContractEventHandler,
		q.Handlers.Services, log.Logger, q.processingTimeout,
	)
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	q.ContractEventQueueClient.Stop()
	q.InstructionQueueClient.Stop()
}

func (q *Queues) IsConnectionHealthy() error {
	if err := q.ContractEventQueueClient.Ping(); err != nil {
		return err
	}
	return q.InstructionQueueClient.Ping()
}

// startQueueMessageProcessing consumes one queue until it is stopped.
// Server-side failures leave the message unacked so it is redelivered;
// client-side failures park the message in the unprocessable collection and
// ack it so a poison message cannot wedge the queue.
func startQueueMessageProcessing(
	queueClient client.QueueClient, handler handlers.MessageHandler,
	service *services.Services, logger zerolog.Logger, timeout time.Duration,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			handlerErr := handler(ctx, message.Body)
			if handlerErr != nil {
				logger.Error().Err(handlerErr).
					Str("queueName", queueClient.GetQueueName()).
					Msg("error while processing message from queue")
				if handlerErr.StatusCode >= http.StatusInternalServerError {
					metrics.RecordQueueMessageOutcome(queueClient.GetQueueName(), metrics.Error)
					cancel()
					continue
				}
				if err := service.SaveUnprocessableMessages(ctx, message.Body, message.Receipt); err != nil {
					logger.Error().Err(err).
						Str("queueName", queueClient.GetQueueName()).
						Msg("error while saving unprocessable message")
					cancel()
					continue
				}
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).
					Str("queueName", queueClient.GetQueueName()).
					Msg("error while deleting message from queue")
			}
			if handlerErr == nil {
				metrics.RecordQueueMessageOutcome(queueClient.GetQueueName(), metrics.Success)
			} else {
				metrics.RecordQueueMessageOutcome(queueClient.GetQueueName(), metrics.Error)
			}
			cancel()
		}
	}()
}
