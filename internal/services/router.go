package services

import (
	"context"
	"net/http"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/db/model"
	queueclient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/staking"
	"github.com/knstl/qstaking-service/internal/types"
)

// Delegation router operations. The router owns the participant ledger and
// the receipt credit supply; every state transition here is mirrored onto
// the participant's stake proxy and the credit issuer.

func (s *Services) findRegisteredParticipant(
	ctx context.Context, address string,
) (*model.ParticipantDocument, *types.Error) {
	participant, err := s.DbClient.FindParticipant(ctx, address)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusForbidden, types.UnregisteredUser, "participant is not registered",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching participant")
		return nil, types.NewInternalServiceError(err)
	}
	return participant, nil
}

// validateDeposit enforces the single-coin deposit rule: exactly one coin,
// of the staking denom, with a positive amount.
func (s *Services) validateDeposit(funds []types.Coin) (math.Int, *types.Error) {
	if len(funds) == 0 {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "no funds sent",
		)
	}
	if len(funds) > 1 {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidMultipleTokens, "more than one coin sent",
		)
	}
	coin := funds[0]
	if coin.Denom != s.cfg.Staking.Denom {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.UnstakeableTokenSent, "coin is not the staking denom",
		)
	}
	if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "amount must be positive",
		)
	}
	return coin.Amount, nil
}

func (s *Services) issuerAddress(ctx context.Context) (string, *types.Error) {
	state, err := s.DbClient.GetEngineState(ctx)
	if err != nil || state.IssuerAddress == "" {
		if err != nil && !db.IsNotFoundError(err) {
			log.Ctx(ctx).Error().Err(err).Msg("error while fetching engine state")
			return "", types.NewInternalServiceError(err)
		}
		return "", types.NewErrorWithMsg(
			http.StatusServiceUnavailable,
			types.InternalServiceError,
			"credit issuer is not provisioned yet",
		)
	}
	return state.IssuerAddress, nil
}

// Stake credits the deposit to the (participant, validator) position, mints
// the matching receipt credit and bonds the funds on the stake proxy.
func (s *Services) Stake(
	ctx context.Context, staker, validator string, funds []types.Coin,
) *types.Error {
	amount, pErr := s.validateDeposit(funds)
	if pErr != nil {
		return pErr
	}
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return pErr
	}
	issuer, pErr := s.issuerAddress(ctx)
	if pErr != nil {
		return pErr
	}

	position, pErr := s.loadOrNewPosition(ctx, staker, validator)
	if pErr != nil {
		return pErr
	}
	pos, posErr := position.Position()
	if posErr != nil {
		return types.NewInternalServiceError(posErr)
	}
	if err := pos.Stake(amount); err != nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}
	position.SetPosition(pos)

	minted, mintedErr := participant.MintedInt()
	if mintedErr != nil {
		return types.NewInternalServiceError(mintedErr)
	}
	participant.SetMinted(minted.Add(amount))

	proxy, totals, pErr := s.loadAuthorizedProxy(
		ctx, s.cfg.Staking.RouterAddress, participant.ProxyAddress,
	)
	if pErr != nil {
		return pErr
	}
	delegate, pErr := stageProxyBond(proxy, &totals, validator, amount)
	if pErr != nil {
		return pErr
	}
	proxy.SetTotals(totals)

	if err := s.DbClient.ApplyLedgerUpdate(ctx, &db.LedgerUpdate{
		Participant: participant,
		Positions:   []*model.PositionDocument{position},
		Proxy:       proxy,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while committing stake ledger update")
		return types.NewInternalServiceError(err)
	}

	return s.publishInstructions(ctx, []interface{}{
		delegate,
		queueclient.MintInstruction{
			InstructionType: queueclient.MintInstructionType,
			Issuer:          issuer,
			Recipient:       staker,
			Amount:          amount.String(),
		},
	})
}

// Unstake debits the position, burns the matching receipt credit and starts
// the unbonding clock on the proxy. The compounded share tied to the
// unstaked principal is decompounded first so it unbonds alongside it.
func (s *Services) Unstake(
	ctx context.Context, staker, validator string, amount math.Int,
) *types.Error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "amount must be positive",
		)
	}
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return pErr
	}
	issuer, pErr := s.issuerAddress(ctx)
	if pErr != nil {
		return pErr
	}

	position, err := s.DbClient.FindPosition(ctx, staker, validator)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.InvalidUnstakeAmount, "no stake with this validator",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching position")
		return types.NewInternalServiceError(err)
	}
	pos, posErr := position.Position()
	if posErr != nil {
		return types.NewInternalServiceError(posErr)
	}
	decompound, unstakeErr := pos.Unstake(amount)
	if unstakeErr != nil {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidUnstakeAmount, unstakeErr.Error(),
		)
	}
	position.SetPosition(pos)

	minted, mintedErr := participant.MintedInt()
	if mintedErr != nil {
		return types.NewInternalServiceError(mintedErr)
	}
	participant.SetMinted(minted.Sub(amount))

	proxy, totals, pErr := s.loadAuthorizedProxy(
		ctx, s.cfg.Staking.RouterAddress, participant.ProxyAddress,
	)
	if pErr != nil {
		return pErr
	}
	now := time.Now().UTC()
	var instructions []interface{}
	if decompound.IsPositive() {
		undelegate, pErr := stageProxyDecompound(proxy, &totals, validator, decompound, now)
		if pErr != nil {
			return pErr
		}
		instructions = append(instructions, undelegate)
	}
	undelegate, pErr := stageProxyUnbond(proxy, &totals, validator, amount, now)
	if pErr != nil {
		return pErr
	}
	instructions = append(instructions, undelegate)
	proxy.SetTotals(totals)

	if err := s.DbClient.ApplyLedgerUpdate(ctx, &db.LedgerUpdate{
		Participant: participant,
		Positions:   []*model.PositionDocument{position},
		Proxy:       proxy,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while committing unstake ledger update")
		return types.NewInternalServiceError(err)
	}

	instructions = append(instructions, queueclient.BurnFromInstruction{
		InstructionType: queueclient.BurnFromInstructionType,
		Issuer:          issuer,
		Owner:           staker,
		Amount:          amount.String(),
	})
	return s.publishInstructions(ctx, instructions)
}

// Restake re-points bonded principal from one validator to another without
// touching the receipt credit supply.
func (s *Services) Restake(
	ctx context.Context, staker, srcValidator, dstValidator string, amount math.Int,
) *types.Error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "amount must be positive",
		)
	}
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return pErr
	}

	srcPosition, err := s.DbClient.FindPosition(ctx, staker, srcValidator)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.TooFewTokens, "no stake with the source validator",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching source position")
		return types.NewInternalServiceError(err)
	}
	srcPos, posErr := srcPosition.Position()
	if posErr != nil {
		return types.NewInternalServiceError(posErr)
	}
	if err := srcPos.Redelegate(amount); err != nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.TooFewTokens, err.Error())
	}
	srcPosition.SetPosition(srcPos)

	dstPosition, pErr := s.loadOrNewPosition(ctx, staker, dstValidator)
	if pErr != nil {
		return pErr
	}
	dstPos, posErr := dstPosition.Position()
	if posErr != nil {
		return types.NewInternalServiceError(posErr)
	}
	if err := dstPos.Stake(amount); err != nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}
	dstPosition.SetPosition(dstPos)

	// The bonded total is unchanged by a restake; the proxy is loaded only
	// to verify it exists before the positions move.
	proxy, _, pErr := s.loadAuthorizedProxy(
		ctx, s.cfg.Staking.RouterAddress, participant.ProxyAddress,
	)
	if pErr != nil {
		return pErr
	}

	if err := s.DbClient.ApplyLedgerUpdate(ctx, &db.LedgerUpdate{
		Positions: []*model.PositionDocument{srcPosition, dstPosition},
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while committing restake ledger update")
		return types.NewInternalServiceError(err)
	}

	return s.publishInstruction(ctx, queueclient.RedelegateInstruction{
		InstructionType: queueclient.RedelegateInstructionType,
		Delegator:       proxy.Address,
		SrcValidator:    srcValidator,
		DstValidator:    dstValidator,
		Denom:           proxy.Config.Denom,
		Amount:          amount.String(),
	})
}

// Collect asks the proxy to pull one validator's accrued rewards into its
// spendable balance.
func (s *Services) Collect(ctx context.Context, staker, validator string) *types.Error {
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return pErr
	}
	return s.ProxyClaim(ctx, s.cfg.Staking.RouterAddress, participant.ProxyAddress, validator)
}

// CollectAll claims rewards from every validator the participant currently
// stakes with.
func (s *Services) CollectAll(ctx context.Context, staker string) *types.Error {
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return pErr
	}
	positions, err := s.DbClient.FindPositionsByAddress(ctx, staker)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching positions")
		return types.NewInternalServiceError(err)
	}

	router := s.cfg.Staking.RouterAddress
	for _, position := range positions {
		pos, posErr := position.Position()
		if posErr != nil {
			return types.NewInternalServiceError(posErr)
		}
		if !pos.Staked.IsPositive() {
			continue
		}
		if pErr := s.ProxyClaim(
			ctx, router, participant.ProxyAddress, position.Validator,
		); pErr != nil {
			return pErr
		}
	}
	return nil
}

// Compound reinvests collected rewards with a validator. No receipt credit
// is minted: the credit tracks deposits, not yield.
func (s *Services) Compound(
	ctx context.Context, staker, validator string, amount math.Int,
) *types.Error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "amount must be positive",
		)
	}
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return pErr
	}

	// Rewards may be compounded onto a validator the participant has no
	// stake with yet; the position is created on the fly.
	position, pErr := s.loadOrNewPosition(ctx, staker, validator)
	if pErr != nil {
		return pErr
	}
	pos, posErr := position.Position()
	if posErr != nil {
		return types.NewInternalServiceError(posErr)
	}
	if err := pos.Compound(amount); err != nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}
	position.SetPosition(pos)

	proxy, totals, pErr := s.loadAuthorizedProxy(
		ctx, s.cfg.Staking.RouterAddress, participant.ProxyAddress,
	)
	if pErr != nil {
		return pErr
	}
	instructions, pErr := stageProxyCompound(proxy, &totals, validator, amount)
	if pErr != nil {
		return pErr
	}
	proxy.SetTotals(totals)

	if err := s.DbClient.ApplyLedgerUpdate(ctx, &db.LedgerUpdate{
		Positions: []*model.PositionDocument{position},
		Proxy:     proxy,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while committing compound ledger update")
		return types.NewInternalServiceError(err)
	}

	return s.publishInstructions(ctx, instructions)
}

// Withdraw settles the participant's matured unbondings and pays them out.
func (s *Services) Withdraw(ctx context.Context, staker string) (*staking.WithdrawResult, *types.Error) {
	participant, pErr := s.findRegisteredParticipant(ctx, staker)
	if pErr != nil {
		return nil, pErr
	}
	return s.ProxyWithdraw(ctx, s.cfg.Staking.RouterAddress, participant.ProxyAddress)
}

func (s *Services) loadOrNewPosition(
	ctx context.Context, address, validator string,
) (*model.PositionDocument, *types.Error) {
	position, err := s.DbClient.FindPosition(ctx, address, validator)
	if err != nil {
		if db.IsNotFoundError(err) {
			return model.NewPositionDocument(address, validator, staking.NewPosition()), nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching position")
		return nil, types.NewInternalServiceError(err)
	}
	return position, nil
}
