package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/db/model"
	queueclient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/staking"
	"github.com/knstl/qstaking-service/internal/types"
)

func TestProxyOpsRejectNonRouterCaller(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil).AnyTimes()

	requireUnauthorized := func(err *types.Error) {
		t.Helper()
		require.NotNil(t, err)
		require.Equal(t, http.StatusForbidden, err.StatusCode)
		require.Equal(t, types.Unauthorized, err.ErrorCode)
	}

	// The proxy owner itself is not the router, so even the owner is refused.
	requireUnauthorized(services.ProxyStake(ctx, testStaker, testProxy, testValidator, math.NewInt(10)))
	requireUnauthorized(services.ProxyUnstake(ctx, testStaker, testProxy, testValidator, math.NewInt(10)))
	requireUnauthorized(services.ProxyRestake(ctx, testStaker, testProxy, testValidator, testValidator2, math.NewInt(10)))
	requireUnauthorized(services.ProxyCompound(ctx, testStaker, testProxy, testValidator, math.NewInt(10)))
	requireUnauthorized(services.ProxyClaim(ctx, testStaker, testProxy, testValidator))

	_, err := services.ProxyWithdraw(ctx, testStaker, testProxy)
	requireUnauthorized(err)
}

func TestProxyStakeUnknownProxy(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(
		nil, &db.NotFoundError{Key: testProxy, Message: "proxy not found"},
	)

	err := services.ProxyStake(ctx, testRouter, testProxy, testValidator, math.NewInt(10))
	require.NotNil(t, err)
	require.Equal(t, http.StatusNotFound, err.StatusCode)
	require.Equal(t, types.NotFound, err.ErrorCode)
}

func TestProxyCompoundWithZeroRateSkipsCommission(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	config := testProxyConfig()
	config.CommissionRate = "0"
	proxyDoc := model.NewProxyDocument(testProxy, config)

	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)
	mockDB.EXPECT().SaveProxyTotals(gomock.Any(), gomock.Any()).Return(nil)

	err := services.ProxyCompound(ctx, testRouter, testProxy, testValidator, math.NewInt(90))
	require.Nil(t, err)
	require.Equal(t, []string{queueclient.DelegateInstructionType}, publishedTypes(t, *published))
}

func TestProxyDecompoundRequiresCompoundedBalance(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	proxyDoc := testProxyDocument()
	proxyDoc.SetTotals(staking.ProxyTotals{
		Bonded:     math.NewInt(100),
		Compounded: math.NewInt(20),
	})
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)

	err := services.ProxyDecompound(ctx, testRouter, testProxy, testValidator, math.NewInt(21))
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.TooFewTokens, err.ErrorCode)
}

func TestProxyWithdrawNothingMatured(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, mockBank := newTestServices(t)

	proxyDoc := testProxyDocument()
	proxyDoc.SetTotals(staking.ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []staking.UnbondingEntry{{
			Amount:      math.NewInt(100),
			Validator:   testValidator,
			RequestedAt: time.Now().UTC(),
		}},
	})
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)
	mockBank.EXPECT().Balance(gomock.Any(), testProxy, testDenom).Return(
		types.NewCoin(testDenom, math.NewInt(1000)), nil,
	)

	_, err := services.ProxyWithdraw(ctx, testRouter, testProxy)
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.InvalidZeroAmount, err.ErrorCode)
	require.Len(t, proxyDoc.Unbondings, 1, "a failed withdraw must leave the queue untouched")
}

// A payout send that fails to publish must not be lost: the settlement is
// already persisted, so the instruction is parked for replay, the rest of
// the batch still goes out and the call reports the failure.
func TestProxyWithdrawPublishFailureParksPayout(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, mockBank := newTestServices(t)

	matured := time.Now().UTC().Add(-testUnbondingPeriod - time.Hour)
	proxyDoc := testProxyDocument()
	proxyDoc.SetTotals(staking.ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []staking.UnbondingEntry{{
			Amount:      math.NewInt(100),
			Validator:   testValidator,
			RequestedAt: matured,
		}},
	})
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)
	mockBank.EXPECT().Balance(gomock.Any(), testProxy, testDenom).Return(
		types.NewCoin(testDenom, math.NewInt(1000)), nil,
	)
	mockDB.EXPECT().SaveProxyTotals(gomock.Any(), gomock.Any()).Return(nil)

	var sent []string
	gomock.InOrder(
		mockQueue.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(
			errors.New("broker unavailable"),
		),
		mockQueue.EXPECT().SendMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body string) error {
				sent = append(sent, body)
				return nil
			},
		),
	)
	var parked []string
	mockDB.EXPECT().SaveUnprocessableMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body, receipt string) error {
			parked = append(parked, body)
			return nil
		},
	)

	result, err := services.ProxyWithdraw(ctx, testRouter, testProxy)
	require.Nil(t, result)
	require.NotNil(t, err)
	require.Equal(t, http.StatusInternalServerError, err.StatusCode)

	// The owner payout is parked for replay, the pool payout still went out.
	require.Len(t, parked, 1)
	var toOwner queueclient.SendInstruction
	require.NoError(t, json.Unmarshal([]byte(parked[0]), &toOwner))
	require.Equal(t, testStaker, toOwner.Recipient)
	require.Equal(t, "181", toOwner.Amount)

	require.Len(t, sent, 1)
	var toPool queueclient.SendInstruction
	require.NoError(t, json.Unmarshal([]byte(sent[0]), &toPool))
	require.Equal(t, testCommunityPool, toPool.Recipient)
	require.Equal(t, "9", toPool.Amount)
}

func TestProxyWithdrawSplitsPayout(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, mockBank := newTestServices(t)
	published := capturePublished(mockQueue)

	matured := time.Now().UTC().Add(-testUnbondingPeriod - time.Hour)
	proxyDoc := testProxyDocument()
	proxyDoc.SetTotals(staking.ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []staking.UnbondingEntry{{
			Amount:      math.NewInt(100),
			Validator:   testValidator,
			RequestedAt: matured,
		}},
	})
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)
	mockBank.EXPECT().Balance(gomock.Any(), testProxy, testDenom).Return(
		types.NewCoin(testDenom, math.NewInt(1000)), nil,
	)
	mockDB.EXPECT().SaveProxyTotals(gomock.Any(), gomock.Any()).Return(nil)

	// matured=100, residual=900, rewardRatio=100/1000, yield=90:
	// owner gets 100 + 81, the pool gets 9.
	result, err := services.ProxyWithdraw(ctx, testRouter, testProxy)
	require.Nil(t, err)
	require.Equal(t, math.NewInt(100), result.Matured)
	require.Equal(t, math.NewInt(181), result.Owner)
	require.Equal(t, math.NewInt(9), result.Commission)
	require.Empty(t, proxyDoc.Unbondings)

	require.Equal(t, []string{
		queueclient.SendInstructionType,
		queueclient.SendInstructionType,
	}, publishedTypes(t, *published))

	var toOwner queueclient.SendInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[0]), &toOwner))
	require.Equal(t, testStaker, toOwner.Recipient)
	require.Equal(t, "181", toOwner.Amount)

	var toPool queueclient.SendInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[1]), &toPool))
	require.Equal(t, testCommunityPool, toPool.Recipient)
	require.Equal(t, "9", toPool.Amount)
}
