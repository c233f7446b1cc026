package config

import (
	"fmt"
)

type QueueConfig struct {
	Url                    string `mapstructure:"url"`
	QueueUser              string `mapstructure:"queue-user"`
	QueuePassword          string `mapstructure:"queue-password"`
	InstructionQueueName   string `mapstructure:"instruction-queue-name"`
	ContractEventQueueName string `mapstructure:"contract-event-queue-name"`
	QueueProcessingTimeout int    `mapstructure:"queue-processing-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if cfg.QueueUser == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.InstructionQueueName == "" {
		return fmt.Errorf("missing instruction queue name")
	}

	if cfg.ContractEventQueueName == "" {
		return fmt.Errorf("missing contract event queue name")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("queue processing timeout must be a positive integer")
	}

	return nil
}
