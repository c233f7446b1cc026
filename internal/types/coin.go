package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Coin is a single denominated amount of the native asset. Amounts are
// big-int backed so ledger arithmetic never silently wraps.
type Coin struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

func NewCoin(denom string, amount math.Int) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}

func (c Coin) IsValid() bool {
	return c.Denom != "" && !c.Amount.IsNil() && !c.Amount.IsNegative()
}

func (c Coin) IsZero() bool {
	return c.Amount.IsNil() || c.Amount.IsZero()
}
