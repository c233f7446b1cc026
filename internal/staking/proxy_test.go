package staking

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

var (
	testUnbondingPeriod = 21 * 24 * time.Hour
	testCommissionRate  = math.LegacyNewDecWithPrec(1, 1) // 0.1
)

func TestUnbondSaturatesBondedAtZero(t *testing.T) {
	now := time.Now()
	totals := NewProxyTotals()
	require.NoError(t, totals.Bond(math.NewInt(100)))

	require.NoError(t, totals.Unbond("validator-1", math.NewInt(150), now))
	require.True(t, totals.Bonded.IsZero())
	require.Len(t, totals.Unbondings, 1)
	require.Equal(t, math.NewInt(150), totals.Unbondings[0].Amount)
}

func TestDecompoundRequiresCompoundedBalance(t *testing.T) {
	now := time.Now()
	totals := NewProxyTotals()
	require.NoError(t, totals.Bond(math.NewInt(100)))
	require.NoError(t, totals.Compound(math.NewInt(20)))

	err := totals.Decompound("validator-1", math.NewInt(21), now)
	require.ErrorIs(t, err, ErrInsufficientCompounded)
	require.Equal(t, math.NewInt(20), totals.Compounded)
	require.Empty(t, totals.Unbondings)

	require.NoError(t, totals.Decompound("validator-1", math.NewInt(20), now))
	require.True(t, totals.Compounded.IsZero())
	require.Len(t, totals.Unbondings, 1, "decompounded principal must wait out the unbonding period")
}

func TestGrossCommission(t *testing.T) {
	// 90 * 0.1 / 0.9 = 10
	commission, err := GrossCommission(math.NewInt(90), testCommissionRate)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), commission)

	zero, err := GrossCommission(math.NewInt(90), math.LegacyZeroDec())
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = GrossCommission(math.NewInt(90), math.LegacyOneDec())
	require.ErrorIs(t, err, ErrInvalidCommissionRate)
}

func TestSettleWithdrawCommissionSplit(t *testing.T) {
	// bonded=900, one matured entry of 100, balance=1000, rate=0.1
	// rewardRatio = 100/1000 = 0.1
	// owner      = 100 + 900*0.1*0.9 = 181
	// commission = 900*0.1*0.1      = 9
	now := time.Now()
	totals := ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []UnbondingEntry{
			{Amount: math.NewInt(100), Validator: "validator-1", RequestedAt: now.Add(-testUnbondingPeriod)},
		},
	}

	result, err := totals.SettleWithdraw(math.NewInt(1000), now, testUnbondingPeriod, testCommissionRate)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), result.Matured)
	require.Equal(t, math.NewInt(181), result.Owner)
	require.Equal(t, math.NewInt(9), result.Commission)
	require.Empty(t, totals.Unbondings)

	disbursed := result.Owner.Add(result.Commission)
	require.True(t, disbursed.LTE(math.NewInt(1000)), "payouts must never exceed the held balance")
}

func TestSettleWithdrawMaturityGate(t *testing.T) {
	requestedAt := time.Unix(1_700_000_000, 0)
	totals := ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []UnbondingEntry{
			{Amount: math.NewInt(100), Validator: "validator-1", RequestedAt: requestedAt},
		},
	}

	// one second short of maturity: nothing payable, queue untouched
	early := requestedAt.Add(testUnbondingPeriod - time.Second)
	_, err := totals.SettleWithdraw(math.NewInt(1000), early, testUnbondingPeriod, testCommissionRate)
	require.ErrorIs(t, err, ErrNothingMatured)
	require.Len(t, totals.Unbondings, 1)

	// exactly at maturity the entry is payable
	result, err := totals.SettleWithdraw(math.NewInt(1000), requestedAt.Add(testUnbondingPeriod), testUnbondingPeriod, testCommissionRate)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), result.Matured)
}

func TestSettleWithdrawSweepsOnce(t *testing.T) {
	now := time.Now()
	totals := ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []UnbondingEntry{
			{Amount: math.NewInt(100), Validator: "validator-1", RequestedAt: now.Add(-testUnbondingPeriod)},
		},
	}

	_, err := totals.SettleWithdraw(math.NewInt(1000), now, testUnbondingPeriod, testCommissionRate)
	require.NoError(t, err)

	// immediate second call: matured entries are gone, must not double-pay
	_, err = totals.SettleWithdraw(math.NewInt(1000), now, testUnbondingPeriod, testCommissionRate)
	require.ErrorIs(t, err, ErrNothingMatured)
}

func TestSettleWithdrawKeepsPendingEntries(t *testing.T) {
	now := time.Now()
	totals := ProxyTotals{
		Bonded:     math.NewInt(800),
		Compounded: math.ZeroInt(),
		Unbondings: []UnbondingEntry{
			{Amount: math.NewInt(100), Validator: "validator-1", RequestedAt: now.Add(-testUnbondingPeriod)},
			{Amount: math.NewInt(100), Validator: "validator-2", RequestedAt: now.Add(-time.Hour)},
		},
	}

	// unbondedTotal is the pre-sweep queue: ratio = 100 / (800+200) = 0.1
	result, err := totals.SettleWithdraw(math.NewInt(1000), now, testUnbondingPeriod, testCommissionRate)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), result.Matured)
	// owner = 100 + 900*0.1*0.9 = 181
	require.Equal(t, math.NewInt(181), result.Owner)
	require.Len(t, totals.Unbondings, 1)
	require.Equal(t, "validator-2", totals.Unbondings[0].Validator)
}

func TestSettleWithdrawNeverOverdisburses(t *testing.T) {
	// balance smaller than the matured principal: payout clamps to balance
	now := time.Now()
	totals := ProxyTotals{
		Bonded:     math.NewInt(900),
		Compounded: math.ZeroInt(),
		Unbondings: []UnbondingEntry{
			{Amount: math.NewInt(100), Validator: "validator-1", RequestedAt: now.Add(-testUnbondingPeriod)},
		},
	}

	result, err := totals.SettleWithdraw(math.NewInt(40), now, testUnbondingPeriod, testCommissionRate)
	require.NoError(t, err)
	disbursed := result.Owner.Add(result.Commission)
	require.True(t, disbursed.LTE(math.NewInt(40)))
}
