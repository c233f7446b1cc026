package clients

import (
	"github.com/knstl/qstaking-service/internal/clients/bank"
	"github.com/knstl/qstaking-service/internal/clients/issuer"
	"github.com/knstl/qstaking-service/internal/config"
)

type Clients struct {
	Issuer issuer.IssuerClientInterface
	Bank   bank.BankClientInterface
}

func New(cfg *config.Config) *Clients {
	issuerClient := issuer.NewIssuerClient(&cfg.Clients)
	bankClient := bank.NewBankClient(&cfg.Clients)

	return &Clients{
		Issuer: issuerClient,
		Bank:   bankClient,
	}
}
