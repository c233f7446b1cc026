package staking

import (
	"time"

	"cosmossdk.io/math"
)

// UnbondingEntry is one pending undelegation. The amount becomes payable
// once RequestedAt is at least the unbonding period in the past.
type UnbondingEntry struct {
	Amount      math.Int
	Validator   string
	RequestedAt time.Time
}

func (e UnbondingEntry) MaturedAt(now time.Time, unbondingPeriod time.Duration) bool {
	return !now.Before(e.RequestedAt.Add(unbondingPeriod))
}

// ProxyTotals is the aggregate bookkeeping owned by one participant's stake
// proxy: Bonded is the currently delegated principal, Compounded the reward
// amount already redelegated (physically part of Bonded, tracked apart), and
// Unbondings the time-gated queue of undelegated amounts awaiting maturity.
type ProxyTotals struct {
	Bonded     math.Int
	Compounded math.Int
	Unbondings []UnbondingEntry
}

func NewProxyTotals() ProxyTotals {
	return ProxyTotals{
		Bonded:     math.ZeroInt(),
		Compounded: math.ZeroInt(),
	}
}

// Bond records a fresh delegation.
func (t *ProxyTotals) Bond(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	t.Bonded = t.Bonded.Add(amount)
	return nil
}

// Unbond moves `amount` out of the bonded total into the unbonding queue.
// Bonded saturates at zero: the native staking layer is the authority on how
// much is actually delegable, so the proxy does not re-verify it here.
func (t *ProxyTotals) Unbond(validator string, amount math.Int, now time.Time) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GT(t.Bonded) {
		t.Bonded = math.ZeroInt()
	} else {
		t.Bonded = t.Bonded.Sub(amount)
	}
	t.Unbondings = append(t.Unbondings, UnbondingEntry{
		Amount:      amount,
		Validator:   validator,
		RequestedAt: now,
	})
	return nil
}

// Decompound reverses a compounding move: the decompounded principal must
// wait out the unbonding period like any other undelegation, so it enters
// the same queue.
func (t *ProxyTotals) Decompound(validator string, amount math.Int, now time.Time) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GT(t.Compounded) {
		return ErrInsufficientCompounded
	}
	t.Compounded = t.Compounded.Sub(amount)
	t.Unbondings = append(t.Unbondings, UnbondingEntry{
		Amount:      amount,
		Validator:   validator,
		RequestedAt: now,
	})
	return nil
}

// Compound records a reward redelegation.
func (t *ProxyTotals) Compound(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	t.Compounded = t.Compounded.Add(amount)
	t.Bonded = t.Bonded.Add(amount)
	return nil
}

// UnbondedTotal sums the whole queue, matured and pending alike.
func (t ProxyTotals) UnbondedTotal() math.Int {
	total := math.ZeroInt()
	for _, e := range t.Unbondings {
		total = total.Add(e.Amount)
	}
	return total
}

// GrossCommission is the commission transferred to the community pool when
// `amount` of reward is compounded: amount * rate / (1 - rate). Grossed up
// so that the later withdraw split, which nets commission out again, does
// not charge the compounding participant twice.
func GrossCommission(amount math.Int, rate math.LegacyDec) (math.Int, error) {
	if rate.IsNegative() || rate.GTE(math.LegacyOneDec()) {
		return math.Int{}, ErrInvalidCommissionRate
	}
	if rate.IsZero() {
		return math.ZeroInt(), nil
	}
	gross := math.LegacyNewDecFromInt(amount).Mul(rate).Quo(math.LegacyOneDec().Sub(rate))
	return gross.TruncateInt(), nil
}

// WithdrawResult is the payout split computed by SettleWithdraw.
type WithdrawResult struct {
	Matured    math.Int // matured principal returned to the owner
	Owner      math.Int // total paid to the owner (principal + net yield)
	Commission math.Int // yield cut paid to the community pool
}

// SettleWithdraw sweeps the unbonding queue and splits the proxy's held
// balance between the owner and the community pool:
//
//	rewardRatio = matured / (bonded + unbondedTotal)
//	owner       = matured + (balance - matured) * rewardRatio * (1 - rate)
//	commission  = (balance - matured) * rewardRatio * rate
//
// All three inputs (bonded, the pre-sweep queue, balance) are captured
// before any mutation, and matured entries are dropped exactly once. Fails
// with ErrNothingMatured when no entry has aged past the unbonding period,
// leaving the queue untouched.
func (t *ProxyTotals) SettleWithdraw(
	balance math.Int, now time.Time, unbondingPeriod time.Duration, rate math.LegacyDec,
) (*WithdrawResult, error) {
	if rate.IsNegative() || rate.GTE(math.LegacyOneDec()) {
		return nil, ErrInvalidCommissionRate
	}

	matured := math.ZeroInt()
	unbondedTotal := math.ZeroInt()
	pending := make([]UnbondingEntry, 0, len(t.Unbondings))
	for _, e := range t.Unbondings {
		unbondedTotal = unbondedTotal.Add(e.Amount)
		if e.MaturedAt(now, unbondingPeriod) {
			matured = matured.Add(e.Amount)
		} else {
			pending = append(pending, e)
		}
	}
	if matured.IsZero() {
		return nil, ErrNothingMatured
	}

	// The matured principal is expected to be part of the held balance by
	// now; clamp regardless so no path can disburse more than is held.
	payable := matured
	if payable.GT(balance) {
		payable = balance
	}
	residual := balance.Sub(payable)

	capital := t.Bonded.Add(unbondedTotal)
	rewardRatio := math.LegacyZeroDec()
	if capital.IsPositive() {
		rewardRatio = math.LegacyNewDecFromInt(matured).QuoInt(capital)
	}
	yield := rewardRatio.MulInt(residual)
	commission := yield.Mul(rate).TruncateInt()
	owner := payable.Add(yield.Mul(math.LegacyOneDec().Sub(rate)).TruncateInt())

	t.Unbondings = pending

	return &WithdrawResult{
		Matured:    matured,
		Owner:      owner,
		Commission: commission,
	}, nil
}
