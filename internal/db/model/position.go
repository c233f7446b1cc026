package model

import (
	"fmt"

	"github.com/knstl/qstaking-service/internal/staking"
)

const PositionCollection = "positions"

// PositionDocument is one participant x validator stake entry. Amounts are
// stored as decimal strings so they survive the full 128-bit range.
type PositionDocument struct {
	Id         string `bson:"_id"`
	Address    string `bson:"address"`
	Validator  string `bson:"validator"`
	Staked     string `bson:"staked"`
	Compounded string `bson:"compounded"`
}

func PositionId(address, validator string) string {
	return fmt.Sprintf("%s:%s", address, validator)
}

func NewPositionDocument(address, validator string, position staking.Position) *PositionDocument {
	doc := &PositionDocument{
		Id:        PositionId(address, validator),
		Address:   address,
		Validator: validator,
	}
	doc.SetPosition(position)
	return doc
}

func (d *PositionDocument) Position() (staking.Position, error) {
	staked, err := parseInt(d.Staked)
	if err != nil {
		return staking.Position{}, err
	}
	compounded, err := parseInt(d.Compounded)
	if err != nil {
		return staking.Position{}, err
	}
	return staking.Position{Staked: staked, Compounded: compounded}, nil
}

func (d *PositionDocument) SetPosition(position staking.Position) {
	d.Staked = position.Staked.String()
	d.Compounded = position.Compounded.String()
}
