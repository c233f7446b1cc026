package issuer

import (
	"context"
	"net/http"

	"cosmossdk.io/math"

	"github.com/knstl/qstaking-service/internal/types"
)

type IssuerClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	BalanceOf(ctx context.Context, address string) (math.Int, *types.Error)
}
