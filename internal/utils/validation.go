package utils

import (
	"regexp"
)

var (
	// bech32-style account address: human readable prefix, separator, data part
	addressRegex = regexp.MustCompile(`^[a-z]{2,16}1[02-9ac-hj-np-z]{38,58}$`)
	// validator operator address carries the `valoper` suffix in its prefix
	validatorRegex = regexp.MustCompile(`^[a-z]{2,16}valoper1[02-9ac-hj-np-z]{38,58}$`)
	// native denominations per the bank module's rules
	denomRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)
)

// IsValidAddress checks if the given string is shaped like a bech32 account
// address. Note: it validates the format only, not the checksum; the chain
// is the authority on address validity.
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}

// IsValidValidatorAddress checks if the given string is shaped like a bech32
// validator operator address.
func IsValidValidatorAddress(address string) bool {
	return validatorRegex.MatchString(address)
}

// IsValidDenom checks if the given string is a well-formed denomination.
func IsValidDenom(denom string) bool {
	return denomRegex.MatchString(denom)
}
