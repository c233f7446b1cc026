package handlers

import (
	"net/http"

	"github.com/knstl/qstaking-service/internal/types"
)

// GetEngineConfig godoc
// @Summary Get engine configuration
// @Description Returns the engine's accounting parameters and the issuer address once provisioned.
// @Produce json
// @Success 200 {object} PublicResponse[services.EngineConfigPublic]
// @Router /v1/config [get]
func (h *Handler) GetEngineConfig(request *http.Request) (*Result, *types.Error) {
	config, err := h.services.GetEngineConfig(request.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(config), nil
}

// GetAccount godoc
// @Summary Get a participant's account
// @Description Returns the participant's proxy address, receipt credit counter and all positions.
// @Produce json
// @Param address query string true "Participant Address"
// @Success 200 {object} PublicResponse[services.AccountPublic]
// @Failure 400 {object} types.Error "Missing or invalid 'address' query parameter"
// @Router /v1/account [get]
func (h *Handler) GetAccount(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	account, accountErr := h.services.GetAccount(request.Context(), address)
	if accountErr != nil {
		return nil, accountErr
	}
	return NewResult(account), nil
}

// GetPosition godoc
// @Summary Get one stake position
// @Description Returns the staked and compounded amounts a participant holds with one validator.
// @Produce json
// @Param address query string true "Participant Address"
// @Param validator query string true "Validator Address"
// @Success 200 {object} PublicResponse[services.PositionPublic]
// @Failure 404 {object} types.Error "No stake with this validator"
// @Router /v1/position [get]
func (h *Handler) GetPosition(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	validator, err := parseValidatorQuery(request, "validator")
	if err != nil {
		return nil, err
	}
	position, positionErr := h.services.GetPosition(request.Context(), address, validator)
	if positionErr != nil {
		return nil, positionErr
	}
	return NewResult(position), nil
}

// GetProxyState godoc
// @Summary Get a participant's stake proxy state
// @Description Returns the proxy's bonded and compounded totals and its unbonding queue with maturity times.
// @Produce json
// @Param address query string true "Participant Address"
// @Success 200 {object} PublicResponse[services.ProxyStatePublic]
// @Failure 404 {object} types.Error "Stake proxy not found"
// @Router /v1/proxy [get]
func (h *Handler) GetProxyState(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	proxy, proxyErr := h.services.GetProxyState(request.Context(), address)
	if proxyErr != nil {
		return nil, proxyErr
	}
	return NewResult(proxy), nil
}

// GetProxyRewards godoc
// @Summary Get a participant's collected rewards
// @Description Returns the native balance held by the participant's stake proxy, where collected rewards accumulate.
// @Produce json
// @Param address query string true "Participant Address"
// @Success 200 {object} PublicResponse[services.ProxyRewardsPublic]
// @Failure 404 {object} types.Error "Stake proxy not found"
// @Router /v1/rewards [get]
func (h *Handler) GetProxyRewards(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	rewards, rewardsErr := h.services.GetProxyRewards(request.Context(), address)
	if rewardsErr != nil {
		return nil, rewardsErr
	}
	return NewResult(rewards), nil
}

// GetCreditBalance godoc
// @Summary Get a receipt credit balance
// @Description Returns the receipt credit balance the issuer holds for the address.
// @Produce json
// @Param address query string true "Address"
// @Success 200 {object} PublicResponse[services.CreditBalancePublic]
// @Failure 400 {object} types.Error "Missing or invalid 'address' query parameter"
// @Router /v1/credit-balance [get]
func (h *Handler) GetCreditBalance(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	balance, balanceErr := h.services.GetCreditBalance(request.Context(), address)
	if balanceErr != nil {
		return nil, balanceErr
	}
	return NewResult(balance), nil
}
