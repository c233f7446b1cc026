package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"cosmossdk.io/math"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/db/model"
	queueclient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/internal/staking"
	"github.com/knstl/qstaking-service/internal/types"
)

func TestStakeCommitsLedgerAndMints(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().GetEngineState(gomock.Any()).Return(
		&model.EngineStateDocument{Id: model.EngineStateId, IssuerAddress: testIssuer}, nil,
	)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(
		nil, &db.NotFoundError{Key: testStaker, Message: "position not found"},
	)
	var committed *db.LedgerUpdate
	mockDB.EXPECT().ApplyLedgerUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *db.LedgerUpdate) error {
			committed = update
			return nil
		},
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil)

	err := services.Stake(ctx, testStaker, testValidator, []types.Coin{
		types.NewCoin(testDenom, math.NewInt(100)),
	})
	require.Nil(t, err)

	require.Equal(t, "100", committed.Participant.Minted)
	require.Len(t, committed.Positions, 1)
	require.Equal(t, "100", committed.Positions[0].Staked)
	require.Equal(t, "0", committed.Positions[0].Compounded)
	// The proxy totals ride in the same transaction as the ledger writes.
	require.NotNil(t, committed.Proxy)
	require.Equal(t, "100", committed.Proxy.Bonded)

	require.Equal(t, []string{
		queueclient.DelegateInstructionType,
		queueclient.MintInstructionType,
	}, publishedTypes(t, *published))

	var mint queueclient.MintInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[1]), &mint))
	require.Equal(t, testIssuer, mint.Issuer)
	require.Equal(t, testStaker, mint.Recipient)
	require.Equal(t, "100", mint.Amount)
}

// A failed commit must leave nothing behind: the participant, positions and
// proxy totals land in one transaction, there is no separate proxy write
// that could survive it, and no instruction goes out. The absence of
// SaveProxyTotals and SendMessage expectations makes any such call fail.
func TestStakeFailedCommitPublishesNothing(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().GetEngineState(gomock.Any()).Return(
		&model.EngineStateDocument{Id: model.EngineStateId, IssuerAddress: testIssuer}, nil,
	)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(
		nil, &db.NotFoundError{Key: testStaker, Message: "position not found"},
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil)
	mockDB.EXPECT().ApplyLedgerUpdate(gomock.Any(), gomock.Any()).Return(
		errors.New("transaction aborted"),
	)

	err := services.Stake(ctx, testStaker, testValidator, []types.Coin{
		types.NewCoin(testDenom, math.NewInt(100)),
	})
	require.NotNil(t, err)
	require.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestStakeRejectsUnregisteredStaker(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(
		nil, &db.NotFoundError{Key: testStaker, Message: "participant not found"},
	)

	err := services.Stake(ctx, testStaker, testValidator, []types.Coin{
		types.NewCoin(testDenom, math.NewInt(100)),
	})
	require.NotNil(t, err)
	require.Equal(t, http.StatusForbidden, err.StatusCode)
	require.Equal(t, types.UnregisteredUser, err.ErrorCode)
}

func TestStakeDepositValidation(t *testing.T) {
	ctx := context.Background()
	services, _, _, _ := newTestServices(t)

	tests := []struct {
		name  string
		funds []types.Coin
		code  types.ErrorCode
	}{
		{
			name:  "no funds",
			funds: nil,
			code:  types.InvalidZeroAmount,
		},
		{
			name: "multiple coins",
			funds: []types.Coin{
				types.NewCoin(testDenom, math.NewInt(1)),
				types.NewCoin("other", math.NewInt(1)),
			},
			code: types.InvalidMultipleTokens,
		},
		{
			name:  "wrong denom",
			funds: []types.Coin{types.NewCoin("other", math.NewInt(5))},
			code:  types.UnstakeableTokenSent,
		},
		{
			name:  "zero amount",
			funds: []types.Coin{types.NewCoin(testDenom, math.ZeroInt())},
			code:  types.InvalidZeroAmount,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := services.Stake(ctx, testStaker, testValidator, tc.funds)
			require.NotNil(t, err)
			require.Equal(t, http.StatusBadRequest, err.StatusCode)
			require.Equal(t, tc.code, err.ErrorCode)
		})
	}
}

func TestUnstakeDecompoundsBurnsAndUnbonds(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	participant := testParticipant()
	participant.SetMinted(math.NewInt(100))
	position := model.NewPositionDocument(testStaker, testValidator, staking.Position{
		Staked:     math.NewInt(100),
		Compounded: math.NewInt(50),
	})
	proxyDoc := testProxyDocument()
	proxyDoc.SetTotals(staking.ProxyTotals{
		Bonded:     math.NewInt(100),
		Compounded: math.NewInt(50),
	})

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(participant, nil)
	mockDB.EXPECT().GetEngineState(gomock.Any()).Return(
		&model.EngineStateDocument{Id: model.EngineStateId, IssuerAddress: testIssuer}, nil,
	)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(position, nil)
	var committed *db.LedgerUpdate
	mockDB.EXPECT().ApplyLedgerUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *db.LedgerUpdate) error {
			committed = update
			return nil
		},
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)

	// Unstaking 40 of 100 releases 40% of the 50 compounded, which is 20.
	err := services.Unstake(ctx, testStaker, testValidator, math.NewInt(40))
	require.Nil(t, err)

	require.Equal(t, "60", committed.Participant.Minted)
	require.Equal(t, "60", committed.Positions[0].Staked)
	require.Equal(t, "30", committed.Positions[0].Compounded)

	// Decompound and unbond land in one proxy write inside the same
	// transaction as the ledger writes.
	require.NotNil(t, committed.Proxy)
	require.Equal(t, "60", committed.Proxy.Bonded)
	require.Equal(t, "30", committed.Proxy.Compounded)
	require.Len(t, committed.Proxy.Unbondings, 2)

	require.Equal(t, []string{
		queueclient.UndelegateInstructionType,
		queueclient.UndelegateInstructionType,
		queueclient.BurnFromInstructionType,
	}, publishedTypes(t, *published))

	var decompound queueclient.UndelegateInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[0]), &decompound))
	require.Equal(t, "20", decompound.Amount)

	var burn queueclient.BurnFromInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[2]), &burn))
	require.Equal(t, testIssuer, burn.Issuer)
	require.Equal(t, testStaker, burn.Owner)
	require.Equal(t, "40", burn.Amount)
}

func TestUnstakeWithoutPositionRejected(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().GetEngineState(gomock.Any()).Return(
		&model.EngineStateDocument{Id: model.EngineStateId, IssuerAddress: testIssuer}, nil,
	)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(
		nil, &db.NotFoundError{Key: testStaker, Message: "position not found"},
	)

	err := services.Unstake(ctx, testStaker, testValidator, math.NewInt(10))
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.InvalidUnstakeAmount, err.ErrorCode)
}

func TestUnstakeExceedingStakeRejected(t *testing.T) {
	ctx := context.Background()
	services, mockDB, _, _ := newTestServices(t)

	position := model.NewPositionDocument(testStaker, testValidator, staking.Position{
		Staked:     math.NewInt(100),
		Compounded: math.ZeroInt(),
	})
	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().GetEngineState(gomock.Any()).Return(
		&model.EngineStateDocument{Id: model.EngineStateId, IssuerAddress: testIssuer}, nil,
	)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(position, nil)

	err := services.Unstake(ctx, testStaker, testValidator, math.NewInt(101))
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.InvalidUnstakeAmount, err.ErrorCode)
	require.Equal(t, "100", position.Staked, "a rejected unstake must not mutate the position")
}

func TestRestakeMovesPrincipalBetweenValidators(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	srcPosition := model.NewPositionDocument(testStaker, testValidator, staking.Position{
		Staked:     math.NewInt(100),
		Compounded: math.ZeroInt(),
	})
	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(srcPosition, nil)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator2).Return(
		nil, &db.NotFoundError{Key: testStaker, Message: "position not found"},
	)
	var committed *db.LedgerUpdate
	mockDB.EXPECT().ApplyLedgerUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *db.LedgerUpdate) error {
			committed = update
			return nil
		},
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil)

	err := services.Restake(ctx, testStaker, testValidator, testValidator2, math.NewInt(40))
	require.Nil(t, err)

	// The credit supply is untouched, only positions move.
	require.Nil(t, committed.Participant)
	require.Len(t, committed.Positions, 2)
	require.Equal(t, "60", committed.Positions[0].Staked)
	require.Equal(t, "40", committed.Positions[1].Staked)

	require.Equal(t, []string{queueclient.RedelegateInstructionType}, publishedTypes(t, *published))
	var redelegate queueclient.RedelegateInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[0]), &redelegate))
	require.Equal(t, testValidator, redelegate.SrcValidator)
	require.Equal(t, testValidator2, redelegate.DstValidator)
	require.Equal(t, "40", redelegate.Amount)
}

func TestCompoundAddsToPositionWithoutMinting(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	position := model.NewPositionDocument(testStaker, testValidator, staking.Position{
		Staked:     math.NewInt(100),
		Compounded: math.ZeroInt(),
	})
	proxyDoc := testProxyDocument()

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(position, nil)
	var committed *db.LedgerUpdate
	mockDB.EXPECT().ApplyLedgerUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *db.LedgerUpdate) error {
			committed = update
			return nil
		},
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(proxyDoc, nil)

	err := services.Compound(ctx, testStaker, testValidator, math.NewInt(30))
	require.Nil(t, err)

	require.Nil(t, committed.Participant, "compounding must not touch the credit counter")
	require.Equal(t, "130", committed.Positions[0].Staked)
	require.Equal(t, "30", committed.Positions[0].Compounded)
	require.NotNil(t, committed.Proxy)
	require.Equal(t, "30", committed.Proxy.Bonded)
	require.Equal(t, "30", committed.Proxy.Compounded)

	// 30 compounded at 10% commission grosses up to 30 * 0.1 / 0.9 = 3.
	require.Equal(t, []string{
		queueclient.DelegateInstructionType,
		queueclient.SendInstructionType,
	}, publishedTypes(t, *published))
	var send queueclient.SendInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[1]), &send))
	require.Equal(t, testCommunityPool, send.Recipient)
	require.Equal(t, "3", send.Amount)
}

func TestCompoundWithoutPositionCreatesIt(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().FindPosition(gomock.Any(), testStaker, testValidator).Return(
		nil, &db.NotFoundError{Key: testStaker, Message: "position not found"},
	)
	var committed *db.LedgerUpdate
	mockDB.EXPECT().ApplyLedgerUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update *db.LedgerUpdate) error {
			committed = update
			return nil
		},
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil)

	err := services.Compound(ctx, testStaker, testValidator, math.NewInt(10))
	require.Nil(t, err)

	// A fresh position is opened with the compounded amount as both staked
	// and compounded principal.
	require.Len(t, committed.Positions, 1)
	require.Equal(t, "10", committed.Positions[0].Staked)
	require.Equal(t, "10", committed.Positions[0].Compounded)
	require.Equal(t, "10", committed.Proxy.Bonded)
	require.Equal(t, "10", committed.Proxy.Compounded)

	// 10 compounded at 10% commission grosses up to 10 * 0.1 / 0.9 = 1.
	require.Equal(t, []string{
		queueclient.DelegateInstructionType,
		queueclient.SendInstructionType,
	}, publishedTypes(t, *published))
	var send queueclient.SendInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[1]), &send))
	require.Equal(t, "1", send.Amount)
}

func TestCollectAllSkipsEmptyPositions(t *testing.T) {
	ctx := context.Background()
	services, mockDB, mockQueue, _ := newTestServices(t)
	published := capturePublished(mockQueue)

	active := model.NewPositionDocument(testStaker, testValidator, staking.Position{
		Staked:     math.NewInt(100),
		Compounded: math.ZeroInt(),
	})
	drained := model.NewPositionDocument(testStaker, testValidator2, staking.Position{
		Staked:     math.ZeroInt(),
		Compounded: math.ZeroInt(),
	})

	mockDB.EXPECT().FindParticipant(gomock.Any(), testStaker).Return(testParticipant(), nil)
	mockDB.EXPECT().FindPositionsByAddress(gomock.Any(), testStaker).Return(
		[]model.PositionDocument{*active, *drained}, nil,
	)
	mockDB.EXPECT().FindProxy(gomock.Any(), testProxy).Return(testProxyDocument(), nil)

	err := services.CollectAll(ctx, testStaker)
	require.Nil(t, err)

	require.Equal(t, []string{queueclient.WithdrawRewardInstructionType}, publishedTypes(t, *published))
	var claim queueclient.WithdrawRewardInstruction
	require.NoError(t, json.Unmarshal([]byte((*published)[0]), &claim))
	require.Equal(t, testValidator, claim.Validator)
}
