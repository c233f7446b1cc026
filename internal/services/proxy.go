package services

import (
	"context"
	"errors"
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

// Stake proxy operations. Each one loads the proxy document, verifies the
// caller against the proxy's own config copy, applies the bookkeeping
// transition and emits the matching chain instructions. Only the router
// may drive a proxy; the proxy trusts nothing else.
//
// The transitions are staged separately from persistence so the router can
// fold a proxy move into the same transaction as its own ledger writes.

func (s *Services) loadAuthorizedProxy(
	ctx context.Context, caller, proxyAddress string,
) (*model.ProxyDocument, staking.ProxyTotals, *types.Error) {
	proxy, err := s.DbClient.FindProxy(ctx, proxyAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, staking.ProxyTotals{}, types.NewErrorWithMsg(
				http.StatusNotFound, types.NotFound, "stake proxy not found",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching stake proxy")
		return nil, staking.ProxyTotals{}, types.NewInternalServiceError(err)
	}
	if caller != proxy.Config.Router {
		return nil, staking.ProxyTotals{}, types.NewErrorWithMsg(
			http.StatusForbidden, types.Unauthorized, "caller is not the configured router",
		)
	}
	totals, totalsErr := proxy.Totals()
	if totalsErr != nil {
		log.Ctx(ctx).Error().Err(totalsErr).Msg("corrupt stake proxy document")
		return nil, staking.ProxyTotals{}, types.NewInternalServiceError(totalsErr)
	}
	return proxy, totals, nil
}

func (s *Services) saveProxyTotals(
	ctx context.Context, proxy *model.ProxyDocument, totals staking.ProxyTotals,
) *types.Error {
	proxy.SetTotals(totals)
	if err := s.DbClient.SaveProxyTotals(ctx, proxy); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving stake proxy totals")
		return types.NewInternalServiceError(err)
	}
	return nil
}

// stageProxyBond bonds the amount and returns the delegate instruction
// mirroring it on the chain. Nothing is persisted.
func stageProxyBond(
	proxy *model.ProxyDocument, totals *staking.ProxyTotals, validator string, amount math.Int,
) (interface{}, *types.Error) {
	if err := totals.Bond(amount); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}
	return queueclient.DelegateInstruction{
		InstructionType: queueclient.DelegateInstructionType,
		Delegator:       proxy.Address,
		Validator:       validator,
		Denom:           proxy.Config.Denom,
		Amount:          amount.String(),
	}, nil
}

// stageProxyUnbond moves principal into the unbonding queue and returns the
// undelegate instruction.
func stageProxyUnbond(
	proxy *model.ProxyDocument, totals *staking.ProxyTotals,
	validator string, amount math.Int, now time.Time,
) (interface{}, *types.Error) {
	if err := totals.Unbond(validator, amount, now); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}
	return queueclient.UndelegateInstruction{
		InstructionType: queueclient.UndelegateInstructionType,
		Delegator:       proxy.Address,
		Validator:       validator,
		Denom:           proxy.Config.Denom,
		Amount:          amount.String(),
	}, nil
}

// stageProxyDecompound releases previously compounded rewards into the
// unbonding queue and returns the undelegate instruction.
func stageProxyDecompound(
	proxy *model.ProxyDocument, totals *staking.ProxyTotals,
	validator string, amount math.Int, now time.Time,
) (interface{}, *types.Error) {
	if err := totals.Decompound(validator, amount, now); err != nil {
		if errors.Is(err, staking.ErrInsufficientCompounded) {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.TooFewTokens, err.Error())
		}
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}
	return queueclient.UndelegateInstruction{
		InstructionType: queueclient.UndelegateInstructionType,
		Delegator:       proxy.Address,
		Validator:       validator,
		Denom:           proxy.Config.Denom,
		Amount:          amount.String(),
	}, nil
}

// stageProxyCompound bonds collected rewards and returns the delegate
// instruction plus, for a non-zero rate, the grossed-up commission transfer
// to the community pool so the later withdraw split does not charge the
// participant twice.
func stageProxyCompound(
	proxy *model.ProxyDocument, totals *staking.ProxyTotals, validator string, amount math.Int,
) ([]interface{}, *types.Error) {
	rate, rateErr := proxy.Config.CommissionRateDec()
	if rateErr != nil {
		return nil, types.NewInternalServiceError(rateErr)
	}
	commission, commErr := staking.GrossCommission(amount, rate)
	if commErr != nil {
		return nil, types.NewInternalServiceError(commErr)
	}
	if err := totals.Compound(amount); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidZeroAmount, err.Error())
	}

	instructions := []interface{}{
		queueclient.DelegateInstruction{
			InstructionType: queueclient.DelegateInstructionType,
			Delegator:       proxy.Address,
			Validator:       validator,
			Denom:           proxy.Config.Denom,
			Amount:          amount.String(),
		},
	}
	if commission.IsPositive() {
		instructions = append(instructions, queueclient.SendInstruction{
			InstructionType: queueclient.SendInstructionType,
			Sender:          proxy.Address,
			Recipient:       proxy.Config.CommunityPool,
			Denom:           proxy.Config.Denom,
			Amount:          commission.String(),
		})
	}
	return instructions, nil
}

// ProxyStake bonds freshly deposited funds and instructs the chain to
// delegate them from the proxy's account.
func (s *Services) ProxyStake(
	ctx context.Context, caller, proxyAddress, validator string, amount math.Int,
) *types.Error {
	proxy, totals, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return pErr
	}
	instruction, pErr := stageProxyBond(proxy, &totals, validator, amount)
	if pErr != nil {
		return pErr
	}
	if pErr := s.saveProxyTotals(ctx, proxy, totals); pErr != nil {
		return pErr
	}
	return s.publishInstruction(ctx, instruction)
}

// ProxyUnstake moves principal into the unbonding queue and instructs the
// chain to undelegate it.
func (s *Services) ProxyUnstake(
	ctx context.Context, caller, proxyAddress, validator string, amount math.Int,
) *types.Error {
	proxy, totals, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return pErr
	}
	instruction, pErr := stageProxyUnbond(proxy, &totals, validator, amount, time.Now().UTC())
	if pErr != nil {
		return pErr
	}
	if pErr := s.saveProxyTotals(ctx, proxy, totals); pErr != nil {
		return pErr
	}
	return s.publishInstruction(ctx, instruction)
}

// ProxyDecompound undoes previously compounded rewards. The amount leaves
// the compounded counter and waits out the unbonding period like any other
// undelegation.
func (s *Services) ProxyDecompound(
	ctx context.Context, caller, proxyAddress, validator string, amount math.Int,
) *types.Error {
	proxy, totals, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return pErr
	}
	instruction, pErr := stageProxyDecompound(proxy, &totals, validator, amount, time.Now().UTC())
	if pErr != nil {
		return pErr
	}
	if pErr := s.saveProxyTotals(ctx, proxy, totals); pErr != nil {
		return pErr
	}
	return s.publishInstruction(ctx, instruction)
}

// ProxyRestake moves bonded principal between validators. The bonded total
// is unchanged, so this is purely a chain instruction.
func (s *Services) ProxyRestake(
	ctx context.Context, caller, proxyAddress, srcValidator, dstValidator string, amount math.Int,
) *types.Error {
	proxy, _, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return pErr
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "amount must be positive",
		)
	}

	return s.publishInstruction(ctx, queueclient.RedelegateInstruction{
		InstructionType: queueclient.RedelegateInstructionType,
		Delegator:       proxyAddress,
		SrcValidator:    srcValidator,
		DstValidator:    dstValidator,
		Denom:           proxy.Config.Denom,
		Amount:          amount.String(),
	})
}

// ProxyCompound bonds collected rewards back onto a validator and pays the
// commission to the community pool.
func (s *Services) ProxyCompound(
	ctx context.Context, caller, proxyAddress, validator string, amount math.Int,
) *types.Error {
	proxy, totals, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return pErr
	}
	instructions, pErr := stageProxyCompound(proxy, &totals, validator, amount)
	if pErr != nil {
		return pErr
	}
	if pErr := s.saveProxyTotals(ctx, proxy, totals); pErr != nil {
		return pErr
	}
	return s.publishInstructions(ctx, instructions)
}

// ProxyClaim instructs the chain to move a validator's accrued rewards into
// the proxy's spendable balance.
func (s *Services) ProxyClaim(
	ctx context.Context, caller, proxyAddress, validator string,
) *types.Error {
	_, _, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return pErr
	}

	return s.publishInstruction(ctx, queueclient.WithdrawRewardInstruction{
		InstructionType: queueclient.WithdrawRewardInstructionType,
		Delegator:       proxyAddress,
		Validator:       validator,
	})
}

// ProxyWithdraw settles matured unbondings against the proxy's held balance
// and pays out the owner and the community pool.
func (s *Services) ProxyWithdraw(
	ctx context.Context, caller, proxyAddress string,
) (*staking.WithdrawResult, *types.Error) {
	proxy, totals, pErr := s.loadAuthorizedProxy(ctx, caller, proxyAddress)
	if pErr != nil {
		return nil, pErr
	}

	balance, pErr := s.clients.Bank.Balance(ctx, proxyAddress, proxy.Config.Denom)
	if pErr != nil {
		return nil, pErr
	}
	rate, rateErr := proxy.Config.CommissionRateDec()
	if rateErr != nil {
		return nil, types.NewInternalServiceError(rateErr)
	}

	result, err := totals.SettleWithdraw(
		balance.Amount, time.Now().UTC(), proxy.Config.UnbondingPeriod(), rate,
	)
	if err != nil {
		if errors.Is(err, staking.ErrNothingMatured) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.InvalidZeroAmount, "no unbonding has matured yet",
			)
		}
		return nil, types.NewInternalServiceError(err)
	}
	if pErr := s.saveProxyTotals(ctx, proxy, totals); pErr != nil {
		return nil, pErr
	}

	var instructions []interface{}
	if result.Owner.IsPositive() {
		instructions = append(instructions, queueclient.SendInstruction{
			InstructionType: queueclient.SendInstructionType,
			Sender:          proxyAddress,
			Recipient:       proxy.Config.Owner,
			Denom:           proxy.Config.Denom,
			Amount:          result.Owner.String(),
		})
	}
	if result.Commission.IsPositive() {
		instructions = append(instructions, queueclient.SendInstruction{
			InstructionType: queueclient.SendInstructionType,
			Sender:          proxyAddress,
			Recipient:       proxy.Config.CommunityPool,
			Denom:           proxy.Config.Denom,
			Amount:          result.Commission.String(),
		})
	}
	if pErr := s.publishInstructions(ctx, instructions); pErr != nil {
		return nil, pErr
	}
	return result, nil
}
