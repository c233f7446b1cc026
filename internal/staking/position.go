package staking

import (
	"cosmossdk.io/math"
)

// Position is one participant's stake with a single validator. Staked is the
// full delegated principal; Compounded is the portion of Staked that came
// from reinvested rewards rather than fresh deposits. Compounded never
// exceeds Staked.
type Position struct {
	Staked     math.Int
	Compounded math.Int
}

func NewPosition() Position {
	return Position{
		Staked:     math.ZeroInt(),
		Compounded: math.ZeroInt(),
	}
}

// Stake adds freshly deposited principal. Compounded is untouched: a deposit
// dilutes the compounded share rather than growing it.
func (p *Position) Stake(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	p.Staked = p.Staked.Add(amount)
	return nil
}

// DecompoundAmount returns the compounded portion that a partial unstake of
// `amount` must release: compounded * amount / staked, with the pre-unstake
// staked total as denominator and the quotient truncated toward zero.
func (p Position) DecompoundAmount(amount math.Int) math.Int {
	if p.Compounded.IsZero() || p.Staked.IsZero() {
		return math.ZeroInt()
	}
	redeemRate := math.LegacyNewDecFromInt(amount).QuoInt(p.Staked)
	return redeemRate.MulInt(p.Compounded).TruncateInt()
}

// Unstake removes `amount` of principal and the proportional compounded
// portion. It returns the decompounded amount so the caller can mirror the
// move on the proxy's counters. Fails without mutating when the amount
// exceeds the staked total.
func (p *Position) Unstake(amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, ErrInvalidAmount
	}
	if amount.GT(p.Staked) {
		return math.Int{}, ErrInsufficientStake
	}
	decompound := p.DecompoundAmount(amount)
	p.Staked = p.Staked.Sub(amount)
	p.Compounded = p.Compounded.Sub(decompound)
	return decompound, nil
}

// Redelegate moves `amount` of principal out of this position. The compounded
// portion stays behind, matching the on-chain redelegation which re-points
// principal without reclassifying it.
func (p *Position) Redelegate(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if p.Staked.LT(amount) {
		return ErrInsufficientStake
	}
	p.Staked = p.Staked.Sub(amount)
	return nil
}

// Compound reclassifies reinvested reward as additional principal.
func (p *Position) Compound(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	p.Staked = p.Staked.Add(amount)
	p.Compounded = p.Compounded.Add(amount)
	return nil
}
