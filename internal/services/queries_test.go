package services

import (
	"context"
	"net/http"
	"testing"

	"cosmossdk.io/math"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/knstl/qstaking-service/internal/types"
)

func TestGetProxyRewardsReturnsProxyBalance(t *testing.T) {
	services, mockDB, _, mockBank := newTestServices(t)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil)
	mockBank.EXPECT().Balance(gomock.Any(), testProxy, testDenom).
		Return(types.NewCoin(testDenom, math.NewInt(1234)), nil)

	rewards, err := services.GetProxyRewards(context.Background(), testStaker)
	require.Nil(t, err)
	require.Equal(t, testStaker, rewards.Address)
	require.Equal(t, testProxy, rewards.ProxyAddress)
	require.Equal(t, testDenom, rewards.Denom)
	require.Equal(t, "1234", rewards.Balance)
}

func TestGetProxyRewardsUnknownProxy(t *testing.T) {
	services, mockDB, _, _ := newTestServices(t)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(nil, notFound(testProxy))

	rewards, err := services.GetProxyRewards(context.Background(), testStaker)
	require.Nil(t, rewards)
	require.NotNil(t, err)
	require.Equal(t, http.StatusNotFound, err.StatusCode)
	require.Equal(t, types.NotFound, err.ErrorCode)
}
