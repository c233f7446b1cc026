package bank

import (
	"context"
	"net/http"

	"github.com/knstl/qstaking-service/internal/types"
)

type BankClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	Balance(ctx context.Context, address, denom string) (types.Coin, *types.Error)
}
