package handlers

import (
	"net/http"

	"cosmossdk.io/math"

	"github.com/knstl/qstaking-service/internal/types"
)

type CoinPayload struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func parseFunds(payload []CoinPayload) ([]types.Coin, *types.Error) {
	funds := make([]types.Coin, 0, len(payload))
	for _, coin := range payload {
		amount, ok := math.NewIntFromString(coin.Amount)
		if !ok {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest, "fund amounts must be decimal integers",
			)
		}
		funds = append(funds, types.NewCoin(coin.Denom, amount))
	}
	return funds, nil
}

type RegisterRequestPayload struct {
	Address string `json:"address"`
}

type RegisterResponse struct {
	RequestId string `json:"request_id"`
}

// Register godoc
// @Summary Register a participant
// @Description Starts provisioning of a dedicated stake proxy for the address. Registration completes asynchronously once the proxy contract reports created.
// @Accept json
// @Produce json
// @Param payload body RegisterRequestPayload true "Register Request Payload"
// @Success 202 {object} RegisterResponse "Provisioning started"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 409 {object} types.Error "Already registered or registration in flight"
// @Router /v1/register [post]
func (h *Handler) Register(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[RegisterRequestPayload](request)
	if err != nil {
		return nil, err
	}
	address, err := parseAddress(payload.Address, "address")
	if err != nil {
		return nil, err
	}

	requestId, registerErr := h.services.Register(request.Context(), address)
	if registerErr != nil {
		return nil, registerErr
	}
	return &Result{
		Data:   &PublicResponse[RegisterResponse]{Data: RegisterResponse{RequestId: requestId}},
		Status: http.StatusAccepted,
	}, nil
}

type StakeRequestPayload struct {
	Staker    string        `json:"staker"`
	Validator string        `json:"validator"`
	Funds     []CoinPayload `json:"funds"`
}

// Stake godoc
// @Summary Stake a deposit
// @Description Credits the deposit to the staker's position with the validator, mints the matching receipt credit and delegates the funds from the stake proxy. This is an async operation.
// @Accept json
// @Produce json
// @Param payload body StakeRequestPayload true "Stake Request Payload"
// @Success 202 "Request accepted and will be processed asynchronously"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/stake [post]
func (h *Handler) Stake(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[StakeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}
	validator, err := parseValidatorAddress(payload.Validator, "validator address")
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(payload.Funds)
	if err != nil {
		return nil, err
	}

	if stakeErr := h.services.Stake(request.Context(), staker, validator, funds); stakeErr != nil {
		return nil, stakeErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type UnstakeRequestPayload struct {
	Staker    string `json:"staker"`
	Validator string `json:"validator"`
	Amount    string `json:"amount"`
}

// Unstake godoc
// @Summary Unstake principal
// @Description Debits the staker's position, burns the matching receipt credit and starts the unbonding clock. This is an async operation.
// @Accept json
// @Produce json
// @Param payload body UnstakeRequestPayload true "Unstake Request Payload"
// @Success 202 "Request accepted and will be processed asynchronously"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/unstake [post]
func (h *Handler) Unstake(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[UnstakeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}
	validator, err := parseValidatorAddress(payload.Validator, "validator address")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount, "amount")
	if err != nil {
		return nil, err
	}

	if unstakeErr := h.services.Unstake(request.Context(), staker, validator, amount); unstakeErr != nil {
		return nil, unstakeErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type RestakeRequestPayload struct {
	Staker       string `json:"staker"`
	SrcValidator string `json:"src_validator"`
	DstValidator string `json:"dst_validator"`
	Amount       string `json:"amount"`
}

// Restake godoc
// @Summary Restake principal to another validator
// @Description Moves bonded principal from one validator to another without touching the receipt credit supply. This is an async operation.
// @Accept json
// @Produce json
// @Param payload body RestakeRequestPayload true "Restake Request Payload"
// @Success 202 "Request accepted and will be processed asynchronously"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/restake [post]
func (h *Handler) Restake(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[RestakeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}
	srcValidator, err := parseValidatorAddress(payload.SrcValidator, "source validator address")
	if err != nil {
		return nil, err
	}
	dstValidator, err := parseValidatorAddress(payload.DstValidator, "destination validator address")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount, "amount")
	if err != nil {
		return nil, err
	}

	if restakeErr := h.services.Restake(
		request.Context(), staker, srcValidator, dstValidator, amount,
	); restakeErr != nil {
		return nil, restakeErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type CollectRequestPayload struct {
	Staker    string `json:"staker"`
	Validator string `json:"validator"`
}

// Collect godoc
// @Summary Collect rewards from one validator
// @Description Moves the validator's accrued rewards into the stake proxy's spendable balance. This is an async operation.
// @Accept json
// @Produce json
// @Param payload body CollectRequestPayload true "Collect Request Payload"
// @Success 202 "Request accepted and will be processed asynchronously"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/collect [post]
func (h *Handler) Collect(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[CollectRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}
	validator, err := parseValidatorAddress(payload.Validator, "validator address")
	if err != nil {
		return nil, err
	}

	if collectErr := h.services.Collect(request.Context(), staker, validator); collectErr != nil {
		return nil, collectErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type CollectAllRequestPayload struct {
	Staker string `json:"staker"`
}

// CollectAll godoc
// @Summary Collect rewards from all validators
// @Description Moves accrued rewards from every validator the staker delegates to into the stake proxy's spendable balance. This is an async operation.
// @Accept json
// @Produce json
// @Param payload body CollectAllRequestPayload true "Collect All Request Payload"
// @Success 202 "Request accepted and will be processed asynchronously"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/collect-all [post]
func (h *Handler) CollectAll(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[CollectAllRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}

	if collectErr := h.services.CollectAll(request.Context(), staker); collectErr != nil {
		return nil, collectErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type CompoundRequestPayload struct {
	Staker    string `json:"staker"`
	Validator string `json:"validator"`
	Amount    string `json:"amount"`
}

// Compound godoc
// @Summary Compound collected rewards
// @Description Reinvests collected rewards with a validator the staker already delegates to. No receipt credit is minted. This is an async operation.
// @Accept json
// @Produce json
// @Param payload body CompoundRequestPayload true "Compound Request Payload"
// @Success 202 "Request accepted and will be processed asynchronously"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/compound [post]
func (h *Handler) Compound(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[CompoundRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}
	validator, err := parseValidatorAddress(payload.Validator, "validator address")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount, "amount")
	if err != nil {
		return nil, err
	}

	if compoundErr := h.services.Compound(request.Context(), staker, validator, amount); compoundErr != nil {
		return nil, compoundErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type WithdrawRequestPayload struct {
	Staker string `json:"staker"`
}

type WithdrawResponse struct {
	Matured    string `json:"matured"`
	Owner      string `json:"owner"`
	Commission string `json:"commission"`
}

// Withdraw godoc
// @Summary Withdraw matured unbondings
// @Description Settles all matured unbondings against the stake proxy's held balance and pays out the staker and the community pool.
// @Accept json
// @Produce json
// @Param payload body WithdrawRequestPayload true "Withdraw Request Payload"
// @Success 200 {object} PublicResponse[WithdrawResponse] "The settled payout split"
// @Failure 400 {object} types.Error "Invalid request payload or nothing to withdraw"
// @Router /v1/withdraw [post]
func (h *Handler) Withdraw(request *http.Request) (*Result, *types.Error) {
	payload, err := decodePayload[WithdrawRequestPayload](request)
	if err != nil {
		return nil, err
	}
	staker, err := parseAddress(payload.Staker, "staker address")
	if err != nil {
		return nil, err
	}

	result, withdrawErr := h.services.Withdraw(request.Context(), staker)
	if withdrawErr != nil {
		return nil, withdrawErr
	}
	return NewResult(WithdrawResponse{
		Matured:    result.Matured.String(),
		Owner:      result.Owner.String(),
		Commission: result.Commission.String(),
	}), nil
}
