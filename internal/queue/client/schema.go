package client

const (
	InstructionQueueName   = "chain_instruction_queue"
	ContractEventQueueName = "contract_event_queue"
)

// Outbound instruction types published for the chain bridge to execute.
const (
	DelegateInstructionType            = "delegate"
	UndelegateInstructionType          = "undelegate"
	RedelegateInstructionType          = "redelegate"
	WithdrawRewardInstructionType      = "withdraw_reward"
	SendInstructionType                = "send"
	MintInstructionType                = "mint"
	BurnFromInstructionType            = "burn_from"
	InstantiateContractInstructionType = "instantiate_contract"
)

// Inbound event types consumed from the contract event queue.
const (
	ContractCreatedEventType = "contract_created"
)

// InstructionEnvelope carries the discriminator shared by every outbound
// instruction so the bridge can dispatch on it.
type InstructionEnvelope struct {
	InstructionType string `json:"instruction_type"`
}

type DelegateInstruction struct {
	InstructionType string `json:"instruction_type"`
	Delegator       string `json:"delegator"`
	Validator       string `json:"validator"`
	Denom           string `json:"denom"`
	Amount          string `json:"amount"`
}

type UndelegateInstruction struct {
	InstructionType string `json:"instruction_type"`
	Delegator       string `json:"delegator"`
	Validator       string `json:"validator"`
	Denom           string `json:"denom"`
	Amount          string `json:"amount"`
}

type RedelegateInstruction struct {
	InstructionType string `json:"instruction_type"`
	Delegator       string `json:"delegator"`
	SrcValidator    string `json:"src_validator"`
	DstValidator    string `json:"dst_validator"`
	Denom           string `json:"denom"`
	Amount          string `json:"amount"`
}

type WithdrawRewardInstruction struct {
	InstructionType string `json:"instruction_type"`
	Delegator       string `json:"delegator"`
	Validator       string `json:"validator"`
}

type SendInstruction struct {
	InstructionType string `json:"instruction_type"`
	Sender          string `json:"sender"`
	Recipient       string `json:"recipient"`
	Denom           string `json:"denom"`
	Amount          string `json:"amount"`
}

type MintInstruction struct {
	InstructionType string `json:"instruction_type"`
	Issuer          string `json:"issuer"`
	Recipient       string `json:"recipient"`
	Amount          string `json:"amount"`
}

type BurnFromInstruction struct {
	InstructionType string `json:"instruction_type"`
	Issuer          string `json:"issuer"`
	Owner           string `json:"owner"`
	Amount          string `json:"amount"`
}

// InstantiateContractInstruction asks the bridge to instantiate a contract
// from a stored template. RequestId correlates the eventual
// ContractCreatedEvent back to the pending provisioning record.
type InstantiateContractInstruction struct {
	InstructionType string `json:"instruction_type"`
	RequestId       string `json:"request_id"`
	TemplateId      uint64 `json:"template_id"`
	Label           string `json:"label"`
	InitPayload     string `json:"init_payload"`
}

type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ContractEvent struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

// ContractCreatedEvent reports the outcome of an instantiate instruction.
// On success the events carry the attributes emitted during instantiation,
// including the owner tag a stake proxy reports about itself.
type ContractCreatedEvent struct {
	EventType       string          `json:"event_type"`
	RequestId       string          `json:"request_id"`
	Success         bool            `json:"success"`
	ContractAddress string          `json:"contract_address"`
	Events          []ContractEvent `json:"events"`
}

// FindAttribute scans the instantiation events for the first attribute with
// the given key.
func (e *ContractCreatedEvent) FindAttribute(key string) (string, bool) {
	for _, event := range e.Events {
		for _, attribute := range event.Attributes {
			if attribute.Key == key {
				return attribute.Value, true
			}
		}
	}
	return "", false
}
