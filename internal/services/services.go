package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/internal/clients"
	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/observability/metrics"
	queueclient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/types"
)

// Service layer contains the business logic: the delegation router ledger,
// the per-participant stake proxies and the provisioning protocol. It is
// used to interact with the database, the external query clients and the
// outbound instruction queue.
type Services struct {
	DbClient          db.DBClient
	cfg               *config.Config
	clients           *clients.Clients
	instructionSender queueclient.QueueClient
}

func New(
	ctx context.Context,
	cfg *config.Config,
	clients *clients.Clients,
	instructionSender queueclient.QueueClient,
) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient:          dbClient,
		cfg:               cfg,
		clients:           clients,
		instructionSender: instructionSender,
	}, nil
}

// NewWithDependencies wires explicit dependencies, used by tests.
func NewWithDependencies(
	cfg *config.Config,
	dbClient db.DBClient,
	clients *clients.Clients,
	instructionSender queueclient.QueueClient,
) *Services {
	return &Services{
		DbClient:          dbClient,
		cfg:               cfg,
		clients:           clients,
		instructionSender: instructionSender,
	}
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

// publishInstruction marshals one chain instruction and puts it on the
// outbound queue. The ledger is committed before instructions go out, so a
// publish failure must not lose the instruction: it is parked in the
// unprocessable collection for replay and the failure surfaced as an
// internal error for the operator.
func (s *Services) publishInstruction(ctx context.Context, instruction interface{}) *types.Error {
	body, err := json.Marshal(instruction)
	if err != nil {
		return types.NewInternalServiceError(err)
	}
	if err := s.instructionSender.SendMessage(ctx, string(body)); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while publishing chain instruction")
		if parkErr := s.DbClient.SaveUnprocessableMessage(
			ctx, string(body), uuid.New().String(),
		); parkErr != nil {
			log.Ctx(ctx).Error().Err(parkErr).Msg("error while parking unpublished chain instruction")
		}
		return types.NewErrorWithMsg(
			http.StatusInternalServerError,
			types.InternalServiceError,
			"error while publishing chain instruction",
		)
	}

	var envelope queueclient.InstructionEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		metrics.RecordInstructionPublished(envelope.InstructionType)
	}
	return nil
}

// publishInstructions attempts every instruction of the batch even after a
// failure, so each one ends up either on the queue or parked for replay.
// The first failure is still reported to the caller.
func (s *Services) publishInstructions(ctx context.Context, instructions []interface{}) *types.Error {
	var firstErr *types.Error
	for _, instruction := range instructions {
		if err := s.publishInstruction(ctx, instruction); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}
