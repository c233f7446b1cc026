package db

import (
	"context"

	"github.com/knstl/qstaking-service/internal/db/model"
)

// LedgerUpdate is the set of documents rewritten by one external call. All
// of them are committed in a single transaction so the receipt credit
// counter, the positions and the proxy totals never diverge: either the
// whole call lands or none of it does.
type LedgerUpdate struct {
	Participant *model.ParticipantDocument
	Positions   []*model.PositionDocument
	Proxy       *model.ProxyDocument
}

type DBClient interface {
	Ping(ctx context.Context) error

	GetEngineState(ctx context.Context) (*model.EngineStateDocument, error)
	SetIssuerAddress(ctx context.Context, address string) error

	SavePendingProvisioning(ctx context.Context, doc *model.PendingProvisioningDocument) error
	FindPendingProvisioning(ctx context.Context, requestId string) (*model.PendingProvisioningDocument, error)
	FindPendingProvisioningByOwner(ctx context.Context, owner string) (*model.PendingProvisioningDocument, error)
	FindPendingProvisioningByKind(ctx context.Context, kind model.ProvisioningKind) (*model.PendingProvisioningDocument, error)
	DeletePendingProvisioning(ctx context.Context, requestId string) error
	CompleteProxyProvisioning(
		ctx context.Context,
		requestId string,
		participant *model.ParticipantDocument,
		proxy *model.ProxyDocument,
	) error

	FindParticipant(ctx context.Context, address string) (*model.ParticipantDocument, error)
	ApplyLedgerUpdate(ctx context.Context, update *LedgerUpdate) error

	FindPosition(ctx context.Context, address, validator string) (*model.PositionDocument, error)
	FindPositionsByAddress(ctx context.Context, address string) ([]model.PositionDocument, error)

	FindProxy(ctx context.Context, address string) (*model.ProxyDocument, error)
	SaveProxy(ctx context.Context, doc *model.ProxyDocument) error
	SaveProxyTotals(ctx context.Context, doc *model.ProxyDocument) error

	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt interface{}) error
}
