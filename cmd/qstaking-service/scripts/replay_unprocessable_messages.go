package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/queue"
	queueClient "github.com/knstl/qstaking-service/internal/queue/client"
)

// genericMessage sniffs the discriminator of a parked message: inbound
// contract events carry event_type, outbound chain instructions that failed
// to publish carry instruction_type.
type genericMessage struct {
	EventType       string `json:"event_type"`
	InstructionType string `json:"instruction_type"`
}

// ReplayUnprocessableMessages re-publishes parked messages: contract events
// go back onto the contract event queue to run through the handlers again,
// unpublished chain instructions go onto the instruction queue.
func ReplayUnprocessableMessages(ctx context.Context, cfg *config.Config, queues *queue.Queues, db db.DBClient) (err error) {
	// Fetch unprocessable messages
	unprocessableMessages, err := db.FindUnprocessableMessages(ctx)
	if err != nil {
		return errors.New("failed to retrieve unprocessable messages")
	}

	// Get the message count
	messageCount := len(unprocessableMessages)

	// Inform the user of the number of unprocessable messages
	fmt.Printf("There are %d unprocessable messages.\n", messageCount)
	if messageCount == 0 {
		return errors.New("no unprocessable messages to replay")
	}

	// Process each unprocessable message
	for _, msg := range unprocessableMessages {
		var message genericMessage
		if err := json.Unmarshal([]byte(msg.MessageBody), &message); err != nil {
			fmt.Printf("Failed to unmarshal parked message: %v", err)
			return errors.New("failed to unmarshal parked message")
		}

		// Re-publish the message onto the queue it belongs to
		if err := processParkedMessage(ctx, queues, message, msg.MessageBody); err != nil {
			return errors.New("failed to process message")
		}

		// Delete the processed message from the database
		if err := db.DeleteUnprocessableMessage(ctx, msg.Receipt); err != nil {
			return errors.New("failed to delete unprocessable message")
		}
	}

	log.Info().Msg("Reprocessing of unprocessable messages completed.")
	return
}

// processParkedMessage re-publishes the message based on its discriminator.
func processParkedMessage(ctx context.Context, queues *queue.Queues, message genericMessage, messageBody string) error {
	switch {
	case message.InstructionType != "":
		return queues.InstructionQueueClient.SendMessage(ctx, messageBody)
	case message.EventType == queueClient.ContractCreatedEventType:
		return queues.ContractEventQueueClient.SendMessage(ctx, messageBody)
	default:
		return fmt.Errorf("unknown parked message type: %v", message.EventType)
	}
}
