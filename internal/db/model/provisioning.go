package model

import (
	"time"
)

const ProvisioningCollection = "provisioning_requests"

type ProvisioningKind string

const (
	IssuerProvisioning ProvisioningKind = "issuer"
	ProxyProvisioning  ProvisioningKind = "proxy"
)

func (k ProvisioningKind) ToString() string {
	return string(k)
}

// PendingProvisioningDocument correlates an in-flight contract instantiation
// with the state needed to resume once the host reports the new address.
// For proxy provisioning it carries the config copy the proxy will own.
type PendingProvisioningDocument struct {
	RequestId   string           `bson:"_id"`
	Kind        ProvisioningKind `bson:"kind"`
	Owner       string           `bson:"owner,omitempty"`
	ProxyConfig *ProxyConfig     `bson:"proxy_config,omitempty"`
	CreatedAt   time.Time        `bson:"created_at"`
}
