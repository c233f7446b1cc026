package bank

import (
	"context"
	"fmt"
	"net/http"

	"cosmossdk.io/math"

	baseclient "github.com/knstl/qstaking-service/internal/clients/base"
	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/types"
)

// BankClient looks up native token balances, used to size withdrawable
// liquidity on a stake proxy before settling a withdrawal.
type BankClient struct {
	config         *config.ClientsConfig
	defaultHeaders map[string]string
	httpClient     *http.Client
}

func NewBankClient(config *config.ClientsConfig) *BankClient {
	httpClient := &http.Client{}
	headers := map[string]string{"Content-Type": "application/json"}
	return &BankClient{
		config,
		headers,
		httpClient,
	}
}

// Necessary for the BaseClient interface
func (c *BankClient) GetBaseURL() string {
	return c.config.BankUrl
}

func (c *BankClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *BankClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type balanceResponse struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c *BankClient) Balance(ctx context.Context, address, denom string) (types.Coin, *types.Error) {
	path := fmt.Sprintf("/balances/%s/by_denom?denom=%s", address, denom)

	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: c.defaultHeaders,
	}

	resp, err := baseclient.SendRequest[any, balanceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return types.Coin{}, err
	}

	amount, ok := math.NewIntFromString(resp.Amount)
	if !ok {
		return types.Coin{}, types.NewErrorWithMsg(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Sprintf("bank returned malformed amount %q", resp.Amount),
		)
	}
	return types.NewCoin(resp.Denom, amount), nil
}
