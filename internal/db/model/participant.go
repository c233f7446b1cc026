package model

import (
	"time"

	"cosmossdk.io/math"
)

const ParticipantCollection = "participants"

// ParticipantDocument is one registered participant's ledger head: the proxy
// contract serving them and the receipt credit minted against their
// deposits. Positions live in their own collection.
type ParticipantDocument struct {
	Address      string    `bson:"_id"`
	ProxyAddress string    `bson:"proxy_address"`
	Minted       string    `bson:"minted"`
	CreatedAt    time.Time `bson:"created_at"`
}

func NewParticipantDocument(address, proxyAddress string, createdAt time.Time) *ParticipantDocument {
	return &ParticipantDocument{
		Address:      address,
		ProxyAddress: proxyAddress,
		Minted:       math.ZeroInt().String(),
		CreatedAt:    createdAt,
	}
}

func (d *ParticipantDocument) MintedInt() (math.Int, error) {
	return parseInt(d.Minted)
}

func (d *ParticipantDocument) SetMinted(minted math.Int) {
	d.Minted = minted.String()
}
