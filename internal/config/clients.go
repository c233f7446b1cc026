package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ClientsConfig holds the endpoints of the synchronous external queries:
// the receipt-credit issuer (balance lookups) and the chain's bank module
// (native balance lookups).
type ClientsConfig struct {
	IssuerUrl string `mapstructure:"issuer-url"`
	BankUrl   string `mapstructure:"bank-url"`
	Timeout   int    `mapstructure:"timeout"`
}

func (cfg *ClientsConfig) Validate() error {
	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}

	for name, endpoint := range map[string]string{
		"issuer-url": cfg.IssuerUrl,
		"bank-url":   cfg.BankUrl,
	} {
		if endpoint == "" {
			return fmt.Errorf("missing %s", name)
		}
		if _, err := url.ParseRequestURI(endpoint); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}
