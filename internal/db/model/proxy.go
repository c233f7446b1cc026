package model

import (
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/knstl/qstaking-service/internal/staking"
)

const ProxyCollection = "proxies"

// ProxyConfig is the stake proxy's own copy of the router parameters, taken
// at provisioning time so the proxy is self-contained afterwards.
type ProxyConfig struct {
	Owner                  string `bson:"owner"`
	Router                 string `bson:"router"`
	Denom                  string `bson:"denom"`
	CommissionRate         string `bson:"commission_rate"`
	CommunityPool          string `bson:"community_pool"`
	UnbondingPeriodSeconds int64  `bson:"unbonding_period_seconds"`
}

func (c ProxyConfig) UnbondingPeriod() time.Duration {
	return time.Duration(c.UnbondingPeriodSeconds) * time.Second
}

func (c ProxyConfig) CommissionRateDec() (math.LegacyDec, error) {
	rate, err := math.LegacyNewDecFromStr(c.CommissionRate)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("corrupt commission rate %q: %w", c.CommissionRate, err)
	}
	return rate, nil
}

type UnbondingEntryDocument struct {
	Amount      string    `bson:"amount"`
	Validator   string    `bson:"validator"`
	RequestedAt time.Time `bson:"requested_at"`
}

// ProxyDocument is the full persisted state of one participant's stake
// proxy: its config copy plus the bonded/compounded totals and the
// unbonding queue.
type ProxyDocument struct {
	Address    string                   `bson:"_id"`
	Config     ProxyConfig              `bson:"config"`
	Bonded     string                   `bson:"bonded"`
	Compounded string                   `bson:"compounded"`
	Unbondings []UnbondingEntryDocument `bson:"unbondings"`
}

func NewProxyDocument(address string, config ProxyConfig) *ProxyDocument {
	doc := &ProxyDocument{
		Address: address,
		Config:  config,
	}
	doc.SetTotals(staking.NewProxyTotals())
	return doc
}

func (d *ProxyDocument) Totals() (staking.ProxyTotals, error) {
	bonded, err := parseInt(d.Bonded)
	if err != nil {
		return staking.ProxyTotals{}, err
	}
	compounded, err := parseInt(d.Compounded)
	if err != nil {
		return staking.ProxyTotals{}, err
	}
	totals := staking.ProxyTotals{
		Bonded:     bonded,
		Compounded: compounded,
	}
	for _, e := range d.Unbondings {
		amount, err := parseInt(e.Amount)
		if err != nil {
			return staking.ProxyTotals{}, err
		}
		totals.Unbondings = append(totals.Unbondings, staking.UnbondingEntry{
			Amount:      amount,
			Validator:   e.Validator,
			RequestedAt: e.RequestedAt,
		})
	}
	return totals, nil
}

func (d *ProxyDocument) SetTotals(totals staking.ProxyTotals) {
	d.Bonded = totals.Bonded.String()
	d.Compounded = totals.Compounded.String()
	entries := make([]UnbondingEntryDocument, 0, len(totals.Unbondings))
	for _, e := range totals.Unbondings {
		entries = append(entries, UnbondingEntryDocument{
			Amount:      e.Amount.String(),
			Validator:   e.Validator,
			RequestedAt: e.RequestedAt,
		})
	}
	d.Unbondings = entries
}
