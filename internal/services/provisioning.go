package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/db/model"
	queueclient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/types"
	"github.com/knstl/qstaking-service/internal/utils"
)

// Provisioning protocol. Contract instantiation is asynchronous: the engine
// records a pending request keyed by a fresh correlation id, publishes an
// instantiate instruction and resumes when the bridge reports the created
// address on the contract event queue.

// proxyInitPayload is the init message handed to a stake proxy template.
type proxyInitPayload struct {
	Owner                  string `json:"owner"`
	Denom                  string `json:"denom"`
	CommissionRate         string `json:"commission_rate"`
	CommunityPool          string `json:"community_pool"`
	UnbondingPeriodSeconds int64  `json:"unbonding_period_seconds"`
}

// issuerInitPayload is the init message handed to the credit issuer
// template. The router is the sole minter.
type issuerInitPayload struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Minter string `json:"minter"`
}

// Register opens proxy provisioning for a new participant. Registration is
// only complete once the proxy's creation event arrives; until then the
// participant stays unregistered and a second Register is rejected.
func (s *Services) Register(ctx context.Context, staker string) (string, *types.Error) {
	if _, err := s.DbClient.FindParticipant(ctx, staker); err == nil {
		return "", types.NewErrorWithMsg(
			http.StatusConflict, types.AlreadyRegistered, "participant is already registered",
		)
	} else if !db.IsNotFoundError(err) {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching participant")
		return "", types.NewInternalServiceError(err)
	}
	if _, err := s.DbClient.FindPendingProvisioningByOwner(ctx, staker); err == nil {
		return "", types.NewErrorWithMsg(
			http.StatusConflict, types.AlreadyRegistered, "registration is already in flight",
		)
	} else if !db.IsNotFoundError(err) {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching pending provisioning")
		return "", types.NewInternalServiceError(err)
	}

	requestId := uuid.New().String()
	proxyConfig := &model.ProxyConfig{
		Owner:                  staker,
		Router:                 s.cfg.Staking.RouterAddress,
		Denom:                  s.cfg.Staking.Denom,
		CommissionRate:         s.cfg.Staking.CommissionRate,
		CommunityPool:          s.cfg.Staking.CommunityPool,
		UnbondingPeriodSeconds: int64(s.cfg.Staking.UnbondingPeriod.Seconds()),
	}
	pending := &model.PendingProvisioningDocument{
		RequestId:   requestId,
		Kind:        model.ProxyProvisioning,
		Owner:       staker,
		ProxyConfig: proxyConfig,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.DbClient.SavePendingProvisioning(ctx, pending); err != nil {
		if db.IsDuplicateKeyError(err) {
			return "", types.NewErrorWithMsg(
				http.StatusConflict, types.AlreadyRegistered, "registration is already in flight",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while saving pending provisioning")
		return "", types.NewInternalServiceError(err)
	}

	initPayload, err := json.Marshal(proxyInitPayload{
		Owner:                  staker,
		Denom:                  proxyConfig.Denom,
		CommissionRate:         proxyConfig.CommissionRate,
		CommunityPool:          proxyConfig.CommunityPool,
		UnbondingPeriodSeconds: proxyConfig.UnbondingPeriodSeconds,
	})
	if err != nil {
		return "", types.NewInternalServiceError(err)
	}
	if pErr := s.publishInstruction(ctx, queueclient.InstantiateContractInstruction{
		InstructionType: queueclient.InstantiateContractInstructionType,
		RequestId:       requestId,
		TemplateId:      s.cfg.Staking.ProxyTemplateId,
		Label:           fmt.Sprintf("%s-%s", s.cfg.Staking.ProxyLabel, staker),
		InitPayload:     string(initPayload),
	}); pErr != nil {
		return "", pErr
	}
	return requestId, nil
}

// EnsureIssuerProvisioned kicks off issuer provisioning on first boot. It
// is a no-op when the issuer already exists or its creation is in flight.
func (s *Services) EnsureIssuerProvisioned(ctx context.Context) error {
	state, err := s.DbClient.GetEngineState(ctx)
	if err == nil && state.IssuerAddress != "" {
		return nil
	}
	if err != nil && !db.IsNotFoundError(err) {
		return err
	}
	if _, err := s.DbClient.FindPendingProvisioningByKind(ctx, model.IssuerProvisioning); err == nil {
		return nil
	} else if !db.IsNotFoundError(err) {
		return err
	}

	requestId := uuid.New().String()
	pending := &model.PendingProvisioningDocument{
		RequestId: requestId,
		Kind:      model.IssuerProvisioning,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DbClient.SavePendingProvisioning(ctx, pending); err != nil {
		return err
	}

	initPayload, err := json.Marshal(issuerInitPayload{
		Name:   s.cfg.Staking.TokenName,
		Symbol: s.cfg.Staking.TokenSymbol,
		Minter: s.cfg.Staking.RouterAddress,
	})
	if err != nil {
		return err
	}
	if pErr := s.publishInstruction(ctx, queueclient.InstantiateContractInstruction{
		InstructionType: queueclient.InstantiateContractInstructionType,
		RequestId:       requestId,
		TemplateId:      s.cfg.Staking.IssuerTemplateId,
		Label:           s.cfg.Staking.IssuerLabel,
		InitPayload:     string(initPayload),
	}); pErr != nil {
		return pErr
	}
	log.Ctx(ctx).Info().Str("requestId", requestId).Msg("issuer provisioning started")
	return nil
}

// HandleContractCreated resumes a pending provisioning from a contract
// creation event. Events with an unknown correlation id are rejected so a
// forged or stale event can never register anyone.
func (s *Services) HandleContractCreated(
	ctx context.Context, event *queueclient.ContractCreatedEvent,
) *types.Error {
	pending, err := s.DbClient.FindPendingProvisioning(ctx, event.RequestId)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusForbidden, types.Unauthorized, "unknown provisioning correlation id",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching pending provisioning")
		return types.NewInternalServiceError(err)
	}

	if !event.Success {
		// A failed instantiation is terminal: drop the pending record so the
		// owner can register again.
		log.Ctx(ctx).Warn().
			Str("requestId", event.RequestId).
			Str("kind", pending.Kind.ToString()).
			Msg("contract instantiation failed")
		if err := s.DbClient.DeletePendingProvisioning(ctx, event.RequestId); err != nil {
			return types.NewInternalServiceError(err)
		}
		return nil
	}

	if !utils.IsValidAddress(event.ContractAddress) {
		return s.rejectProvisioning(ctx, event.RequestId, "malformed contract address")
	}

	switch pending.Kind {
	case model.IssuerProvisioning:
		return s.completeIssuerProvisioning(ctx, event)
	case model.ProxyProvisioning:
		return s.completeProxyProvisioning(ctx, pending, event)
	default:
		return s.rejectProvisioning(ctx, event.RequestId, "unknown provisioning kind")
	}
}

func (s *Services) completeIssuerProvisioning(
	ctx context.Context, event *queueclient.ContractCreatedEvent,
) *types.Error {
	if err := s.DbClient.SetIssuerAddress(ctx, event.ContractAddress); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving issuer address")
		return types.NewInternalServiceError(err)
	}
	if err := s.DbClient.DeletePendingProvisioning(ctx, event.RequestId); err != nil {
		return types.NewInternalServiceError(err)
	}
	log.Ctx(ctx).Info().Str("issuer", event.ContractAddress).Msg("issuer provisioned")
	return nil
}

func (s *Services) completeProxyProvisioning(
	ctx context.Context, pending *model.PendingProvisioningDocument, event *queueclient.ContractCreatedEvent,
) *types.Error {
	owner, found := event.FindAttribute("owner")
	if !found {
		return s.rejectProvisioning(ctx, event.RequestId, "owner attribute missing from instantiation events")
	}
	if owner != pending.Owner || pending.ProxyConfig == nil {
		return s.rejectProvisioning(ctx, event.RequestId, "owner attribute does not match the pending registration")
	}

	participant := model.NewParticipantDocument(owner, event.ContractAddress, time.Now().UTC())
	proxy := model.NewProxyDocument(event.ContractAddress, *pending.ProxyConfig)
	if err := s.DbClient.CompleteProxyProvisioning(ctx, event.RequestId, participant, proxy); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict, types.AlreadyRegistered, "participant is already registered",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while completing proxy provisioning")
		return types.NewInternalServiceError(err)
	}
	log.Ctx(ctx).Info().
		Str("owner", owner).
		Str("proxy", event.ContractAddress).
		Msg("participant registered")
	return nil
}

// rejectProvisioning drops the pending record and reports a malformed
// completion. The owner is left unregistered and must register again.
func (s *Services) rejectProvisioning(
	ctx context.Context, requestId, reason string,
) *types.Error {
	if err := s.DbClient.DeletePendingProvisioning(ctx, requestId); err != nil {
		return types.NewInternalServiceError(err)
	}
	return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidSubmsg, reason)
}
