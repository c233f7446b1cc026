package staking

import (
	"errors"
)

var (
	ErrNothingMatured         = errors.New("no unbonding entry has matured yet")
	ErrInsufficientStake      = errors.New("unstake amount exceeds staked amount")
	ErrInsufficientCompounded = errors.New("decompound amount exceeds compounded total")
	ErrInvalidCommissionRate  = errors.New("commission rate must be within [0, 1)")
	ErrInvalidAmount          = errors.New("amount must be a positive integer")
)
