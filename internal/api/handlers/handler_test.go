package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knstl/qstaking-service/internal/types"
)

const (
	testStaker    = "qstk1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh5v5g"
	testValidator = "qstkvaloper1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh5v5g"
)

func postRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/v1/stake", strings.NewReader(body))
}

func requirePayloadRejected(t *testing.T, err *types.Error) {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestStakeHandlerRejectsMalformedPayload(t *testing.T) {
	handler := &Handler{}
	_, err := handler.Stake(postRequest("{"))
	requirePayloadRejected(t, err)
}

func TestStakeHandlerRejectsInvalidAddresses(t *testing.T) {
	handler := &Handler{}

	_, err := handler.Stake(postRequest(
		`{"staker":"bogus","validator":"` + testValidator + `","funds":[]}`,
	))
	requirePayloadRejected(t, err)

	_, err = handler.Stake(postRequest(
		`{"staker":"` + testStaker + `","validator":"` + testStaker + `","funds":[]}`,
	))
	requirePayloadRejected(t, err)
}

func TestStakeHandlerRejectsNonIntegerFunds(t *testing.T) {
	handler := &Handler{}
	_, err := handler.Stake(postRequest(
		`{"staker":"` + testStaker + `","validator":"` + testValidator +
			`","funds":[{"denom":"uqstk","amount":"1.5"}]}`,
	))
	requirePayloadRejected(t, err)
}

func TestUnstakeHandlerRejectsNonPositiveAmount(t *testing.T) {
	handler := &Handler{}
	for _, amount := range []string{"0", "-5", "abc", ""} {
		_, err := handler.Unstake(postRequest(
			`{"staker":"` + testStaker + `","validator":"` + testValidator +
				`","amount":"` + amount + `"}`,
		))
		requirePayloadRejected(t, err)
	}
}

func TestRegisterHandlerRejectsInvalidAddress(t *testing.T) {
	handler := &Handler{}
	_, err := handler.Register(postRequest(`{"address":"bogus"}`))
	requirePayloadRejected(t, err)
}

func TestParseAddressQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/v1/account?address="+testStaker, nil)
	address, err := parseAddressQuery(request, "address")
	require.Nil(t, err)
	require.Equal(t, testStaker, address)

	request = httptest.NewRequest(http.MethodGet, "/v1/account", nil)
	_, err = parseAddressQuery(request, "address")
	requirePayloadRejected(t, err)
}

func TestParseValidatorQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/v1/position?validator="+testValidator, nil)
	validator, err := parseValidatorQuery(request, "validator")
	require.Nil(t, err)
	require.Equal(t, testValidator, validator)

	// An account address is not a validator operator address.
	request = httptest.NewRequest(http.MethodGet, "/v1/position?validator="+testStaker, nil)
	_, err = parseValidatorQuery(request, "validator")
	requirePayloadRejected(t, err)
}
