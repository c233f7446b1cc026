package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	queueClient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/types"
)

// ContractEventHandler dispatches contract events from the bridge. Only
// contract creation events are expected on this queue; they resume the
// pending provisioning matching the event's correlation id.
func (h *QueueHandler) ContractEventHandler(ctx context.Context, messageBody string) *types.Error {
	var event queueClient.ContractCreatedEvent
	err := json.Unmarshal([]byte(messageBody), &event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into ContractCreatedEvent")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, err.Error())
	}

	if event.EventType != queueClient.ContractCreatedEventType {
		log.Ctx(ctx).Error().Str("eventType", event.EventType).Msg("unexpected event type on contract event queue")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "unexpected event type")
	}
	if event.RequestId == "" {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "missing request id")
	}

	return h.Services.HandleContractCreated(ctx, &event)
}
