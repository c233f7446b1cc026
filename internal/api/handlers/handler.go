package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cosmossdk.io/math"

	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/services"
	"github.com/knstl/qstaking-service/internal/types"
	"github.com/knstl/qstaking-service/internal/utils"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

func decodePayload[T any](request *http.Request) (*T, *types.Error) {
	payload := new(T)
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return payload, nil
}

func parseAddress(value, field string) (string, *types.Error) {
	if !utils.IsValidAddress(value) {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+field,
		)
	}
	return value, nil
}

func parseValidatorAddress(value, field string) (string, *types.Error) {
	if !utils.IsValidValidatorAddress(value) {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+field,
		)
	}
	return value, nil
}

func parseAmount(value, field string) (math.Int, *types.Error) {
	amount, ok := math.NewIntFromString(value)
	if !ok || !amount.IsPositive() {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, field+" must be a positive integer",
		)
	}
	return amount, nil
}

func parseAddressQuery(request *http.Request, param string) (string, *types.Error) {
	return parseAddress(request.URL.Query().Get(param), param+" query parameter")
}

func parseValidatorQuery(request *http.Request, param string) (string, *types.Error) {
	return parseValidatorAddress(request.URL.Query().Get(param), param+" query parameter")
}
