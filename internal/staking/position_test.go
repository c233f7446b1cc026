package staking

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestPositionStakeAccumulates(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Stake(math.NewInt(100)))
	require.NoError(t, p.Stake(math.NewInt(50)))

	require.Equal(t, math.NewInt(150), p.Staked)
	require.True(t, p.Compounded.IsZero(), "fresh deposits must not grow the compounded portion")
}

func TestPositionStakeRejectsNonPositive(t *testing.T) {
	p := NewPosition()
	require.ErrorIs(t, p.Stake(math.ZeroInt()), ErrInvalidAmount)
	require.ErrorIs(t, p.Stake(math.NewInt(-5)), ErrInvalidAmount)
}

func TestDecompoundProportionality(t *testing.T) {
	// staked=100, compounded=40, unstake 25 -> decompound 10, leaving 75/30
	p := Position{Staked: math.NewInt(100), Compounded: math.NewInt(40)}

	decompound, err := p.Unstake(math.NewInt(25))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), decompound)
	require.Equal(t, math.NewInt(75), p.Staked)
	require.Equal(t, math.NewInt(30), p.Compounded)
}

func TestDecompoundTruncatesTowardZero(t *testing.T) {
	p := Position{Staked: math.NewInt(3), Compounded: math.NewInt(2)}

	decompound, err := p.Unstake(math.NewInt(1))
	require.NoError(t, err)
	// 2 * 1/3 = 0.66... truncates to 0
	require.True(t, decompound.IsZero())
	require.Equal(t, math.NewInt(2), p.Staked)
	require.Equal(t, math.NewInt(2), p.Compounded)
}

func TestUnstakeExceedingStakedFailsWithoutMutation(t *testing.T) {
	p := Position{Staked: math.NewInt(100), Compounded: math.NewInt(40)}

	_, err := p.Unstake(math.NewInt(101))
	require.ErrorIs(t, err, ErrInsufficientStake)
	require.Equal(t, math.NewInt(100), p.Staked)
	require.Equal(t, math.NewInt(40), p.Compounded)
}

func TestUnstakeFullPositionReleasesAllCompounded(t *testing.T) {
	p := Position{Staked: math.NewInt(100), Compounded: math.NewInt(40)}

	decompound, err := p.Unstake(math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(40), decompound)
	require.True(t, p.Staked.IsZero())
	require.True(t, p.Compounded.IsZero())
}

func TestRedelegateMovesPrincipalOnly(t *testing.T) {
	p := Position{Staked: math.NewInt(100), Compounded: math.NewInt(40)}

	require.NoError(t, p.Redelegate(math.NewInt(60)))
	require.Equal(t, math.NewInt(40), p.Staked)
	require.Equal(t, math.NewInt(40), p.Compounded)

	require.ErrorIs(t, p.Redelegate(math.NewInt(41)), ErrInsufficientStake)
}

func TestCompoundKeepsCompoundedWithinStaked(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Stake(math.NewInt(100)))
	require.NoError(t, p.Compound(math.NewInt(30)))

	require.Equal(t, math.NewInt(130), p.Staked)
	require.Equal(t, math.NewInt(30), p.Compounded)
	require.True(t, p.Compounded.LTE(p.Staked))
}
