package model

import (
	"fmt"

	"cosmossdk.io/math"
)

func parseInt(s string) (math.Int, error) {
	if s == "" {
		return math.ZeroInt(), nil
	}
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("corrupt amount in document: %q", s)
	}
	return amount, nil
}
