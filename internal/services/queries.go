package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/types"
)

// Read-only views served over the API. Amounts stay decimal strings end to
// end so clients never lose precision to JSON numbers.

type EngineConfigPublic struct {
	Denom                  string `json:"denom"`
	CommissionRate         string `json:"commission_rate"`
	UnbondingPeriodSeconds int64  `json:"unbonding_period_seconds"`
	CommunityPool          string `json:"community_pool"`
	RouterAddress          string `json:"router_address"`
	IssuerAddress          string `json:"issuer_address,omitempty"`
}

type PositionPublic struct {
	Validator  string `json:"validator"`
	Staked     string `json:"staked"`
	Compounded string `json:"compounded"`
}

type AccountPublic struct {
	Address      string           `json:"address"`
	ProxyAddress string           `json:"proxy_address"`
	Minted       string           `json:"minted"`
	Positions    []PositionPublic `json:"positions"`
}

type UnbondingPublic struct {
	Amount      string    `json:"amount"`
	Validator   string    `json:"validator"`
	RequestedAt time.Time `json:"requested_at"`
	MaturesAt   time.Time `json:"matures_at"`
}

type ProxyStatePublic struct {
	Address    string            `json:"address"`
	Owner      string            `json:"owner"`
	Bonded     string            `json:"bonded"`
	Compounded string            `json:"compounded"`
	Unbondings []UnbondingPublic `json:"unbondings"`
}

type CreditBalancePublic struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type ProxyRewardsPublic struct {
	Address      string `json:"address"`
	ProxyAddress string `json:"proxy_address"`
	Denom        string `json:"denom"`
	Balance      string `json:"balance"`
}

func (s *Services) GetEngineConfig(ctx context.Context) (*EngineConfigPublic, *types.Error) {
	result := &EngineConfigPublic{
		Denom:                  s.cfg.Staking.Denom,
		CommissionRate:         s.cfg.Staking.CommissionRate,
		UnbondingPeriodSeconds: int64(s.cfg.Staking.UnbondingPeriod.Seconds()),
		CommunityPool:          s.cfg.Staking.CommunityPool,
		RouterAddress:          s.cfg.Staking.RouterAddress,
	}
	state, err := s.DbClient.GetEngineState(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			log.Ctx(ctx).Error().Err(err).Msg("error while fetching engine state")
			return nil, types.NewInternalServiceError(err)
		}
	} else {
		result.IssuerAddress = state.IssuerAddress
	}
	return result, nil
}

func (s *Services) GetAccount(ctx context.Context, address string) (*AccountPublic, *types.Error) {
	participant, pErr := s.findRegisteredParticipant(ctx, address)
	if pErr != nil {
		return nil, pErr
	}
	positions, err := s.DbClient.FindPositionsByAddress(ctx, address)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching positions")
		return nil, types.NewInternalServiceError(err)
	}

	result := &AccountPublic{
		Address:      participant.Address,
		ProxyAddress: participant.ProxyAddress,
		Minted:       participant.Minted,
		Positions:    make([]PositionPublic, 0, len(positions)),
	}
	for _, position := range positions {
		result.Positions = append(result.Positions, PositionPublic{
			Validator:  position.Validator,
			Staked:     position.Staked,
			Compounded: position.Compounded,
		})
	}
	return result, nil
}

func (s *Services) GetPosition(
	ctx context.Context, address, validator string,
) (*PositionPublic, *types.Error) {
	position, err := s.DbClient.FindPosition(ctx, address, validator)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NotFound, "no stake with this validator",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching position")
		return nil, types.NewInternalServiceError(err)
	}
	return &PositionPublic{
		Validator:  position.Validator,
		Staked:     position.Staked,
		Compounded: position.Compounded,
	}, nil
}

func (s *Services) GetProxyState(ctx context.Context, address string) (*ProxyStatePublic, *types.Error) {
	participant, pErr := s.findRegisteredParticipant(ctx, address)
	if pErr != nil {
		return nil, pErr
	}
	proxy, err := s.DbClient.FindProxy(ctx, participant.ProxyAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NotFound, "stake proxy not found",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching stake proxy")
		return nil, types.NewInternalServiceError(err)
	}

	unbondingPeriod := proxy.Config.UnbondingPeriod()
	result := &ProxyStatePublic{
		Address:    proxy.Address,
		Owner:      proxy.Config.Owner,
		Bonded:     proxy.Bonded,
		Compounded: proxy.Compounded,
		Unbondings: make([]UnbondingPublic, 0, len(proxy.Unbondings)),
	}
	for _, entry := range proxy.Unbondings {
		result.Unbondings = append(result.Unbondings, UnbondingPublic{
			Amount:      entry.Amount,
			Validator:   entry.Validator,
			RequestedAt: entry.RequestedAt,
			MaturesAt:   entry.RequestedAt.Add(unbondingPeriod),
		})
	}
	return result, nil
}

// GetProxyRewards reports the native balance held by the participant's proxy.
// Collected rewards accumulate there until they are compounded or withdrawn.
func (s *Services) GetProxyRewards(ctx context.Context, address string) (*ProxyRewardsPublic, *types.Error) {
	participant, pErr := s.findRegisteredParticipant(ctx, address)
	if pErr != nil {
		return nil, pErr
	}
	proxy, err := s.DbClient.FindProxy(ctx, participant.ProxyAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NotFound, "stake proxy not found",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching stake proxy")
		return nil, types.NewInternalServiceError(err)
	}

	balance, pErr := s.clients.Bank.Balance(ctx, proxy.Address, proxy.Config.Denom)
	if pErr != nil {
		return nil, pErr
	}
	return &ProxyRewardsPublic{
		Address:      participant.Address,
		ProxyAddress: proxy.Address,
		Denom:        balance.Denom,
		Balance:      balance.Amount.String(),
	}, nil
}

// GetCreditBalance proxies a balance lookup to the credit issuer.
func (s *Services) GetCreditBalance(
	ctx context.Context, address string,
) (*CreditBalancePublic, *types.Error) {
	balance, pErr := s.clients.Issuer.BalanceOf(ctx, address)
	if pErr != nil {
		return nil, pErr
	}
	return &CreditBalancePublic{
		Address: address,
		Balance: balance.String(),
	}, nil
}
