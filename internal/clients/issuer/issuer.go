package issuer

import (
	"context"
	"fmt"
	"net/http"

	"cosmossdk.io/math"

	baseclient "github.com/knstl/qstaking-service/internal/clients/base"
	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/types"
)

// IssuerClient queries the receipt-credit issuer for balances. Minting and
// burning go through the instruction queue, not this client.
type IssuerClient struct {
	config         *config.ClientsConfig
	defaultHeaders map[string]string
	httpClient     *http.Client
}

func NewIssuerClient(config *config.ClientsConfig) *IssuerClient {
	httpClient := &http.Client{}
	headers := map[string]string{"Content-Type": "application/json"}
	return &IssuerClient{
		config,
		headers,
		httpClient,
	}
}

// Necessary for the BaseClient interface
func (c *IssuerClient) GetBaseURL() string {
	return c.config.IssuerUrl
}

func (c *IssuerClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *IssuerClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

func (c *IssuerClient) BalanceOf(ctx context.Context, address string) (math.Int, *types.Error) {
	path := fmt.Sprintf("/balance/%s", address)

	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: c.defaultHeaders,
	}

	resp, err := baseclient.SendRequest[any, balanceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return math.Int{}, err
	}

	balance, ok := math.NewIntFromString(resp.Balance)
	if !ok {
		return math.Int{}, types.NewErrorWithMsg(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Sprintf("issuer returned malformed balance %q", resp.Balance),
		)
	}
	return balance, nil
}
