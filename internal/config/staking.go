package config

import (
	"errors"
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/knstl/qstaking-service/internal/utils"
)

// StakingConfig carries the engine's accounting parameters. The commission
// rate and unbonding period are fixed at deployment; the issuer address is
// back-filled once by the provisioning protocol and lives in the database,
// not here.
type StakingConfig struct {
	Denom            string        `mapstructure:"denom"`
	CommissionRate   string        `mapstructure:"commission-rate"`
	UnbondingPeriod  time.Duration `mapstructure:"unbonding-period"`
	CommunityPool    string        `mapstructure:"community-pool"`
	RouterAddress    string        `mapstructure:"router-address"`
	IssuerTemplateId uint64        `mapstructure:"issuer-template-id"`
	IssuerLabel      string        `mapstructure:"issuer-label"`
	TokenName        string        `mapstructure:"token-name"`
	TokenSymbol      string        `mapstructure:"token-symbol"`
	ProxyTemplateId  uint64        `mapstructure:"proxy-template-id"`
	ProxyLabel       string        `mapstructure:"proxy-label"`
}

func (cfg *StakingConfig) Validate() error {
	if !utils.IsValidDenom(cfg.Denom) {
		return fmt.Errorf("invalid staking denom: %s", cfg.Denom)
	}

	rate, err := math.LegacyNewDecFromStr(cfg.CommissionRate)
	if err != nil {
		return fmt.Errorf("invalid commission rate: %w", err)
	}
	if rate.IsNegative() || rate.GTE(math.LegacyOneDec()) {
		return errors.New("commission rate must be within [0, 1)")
	}

	if cfg.UnbondingPeriod <= 0 {
		return errors.New("unbonding period must be positive")
	}

	if !utils.IsValidAddress(cfg.CommunityPool) {
		return fmt.Errorf("invalid community pool address: %s", cfg.CommunityPool)
	}

	if !utils.IsValidAddress(cfg.RouterAddress) {
		return fmt.Errorf("invalid router address: %s", cfg.RouterAddress)
	}

	if cfg.IssuerTemplateId == 0 {
		return errors.New("missing issuer template id")
	}

	if cfg.ProxyTemplateId == 0 {
		return errors.New("missing proxy template id")
	}

	if cfg.TokenName == "" || cfg.TokenSymbol == "" {
		return errors.New("missing receipt token name or symbol")
	}

	return nil
}
