package model

const EngineStateCollection = "engine_state"

// EngineStateId is the _id of the singleton engine state document.
const EngineStateId = "engine"

// EngineStateDocument holds the one piece of router config that is not
// known at deployment: the receipt-credit issuer address, back-filled
// exactly once by the provisioning protocol.
type EngineStateDocument struct {
	Id            string `bson:"_id"`
	IssuerAddress string `bson:"issuer_address"`
}
