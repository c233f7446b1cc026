package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/knstl/qstaking-service/internal/db/model"
)

func (db *Database) SavePendingProvisioning(
	ctx context.Context, doc *model.PendingProvisioningDocument,
) error {
	client := db.Client.Database(db.DbName).Collection(model.ProvisioningCollection)
	_, err := client.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.RequestId,
				Message: "provisioning request already pending",
			}
		}
		return err
	}
	return nil
}

func (db *Database) FindPendingProvisioning(
	ctx context.Context, requestId string,
) (*model.PendingProvisioningDocument, error) {
	return db.findPendingProvisioning(ctx, bson.M{"_id": requestId}, requestId)
}

func (db *Database) FindPendingProvisioningByOwner(
	ctx context.Context, owner string,
) (*model.PendingProvisioningDocument, error) {
	filter := bson.M{"owner": owner, "kind": model.ProxyProvisioning}
	return db.findPendingProvisioning(ctx, filter, owner)
}

func (db *Database) FindPendingProvisioningByKind(
	ctx context.Context, kind model.ProvisioningKind,
) (*model.PendingProvisioningDocument, error) {
	return db.findPendingProvisioning(ctx, bson.M{"kind": kind}, kind.ToString())
}

func (db *Database) findPendingProvisioning(
	ctx context.Context, filter bson.M, key string,
) (*model.PendingProvisioningDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ProvisioningCollection)

	var result model.PendingProvisioningDocument
	err := client.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     key,
				Message: "no matching provisioning request",
			}
		}
		return nil, err
	}
	return &result, nil
}

func (db *Database) DeletePendingProvisioning(ctx context.Context, requestId string) error {
	client := db.Client.Database(db.DbName).Collection(model.ProvisioningCollection)
	_, err := client.DeleteOne(ctx, bson.M{"_id": requestId})
	return err
}

// CompleteProxyProvisioning atomically turns a pending proxy request into a
// registered participant with its proxy document. The participant insert
// fails on a duplicate so a replayed completion cannot double-register.
func (db *Database) CompleteProxyProvisioning(
	ctx context.Context,
	requestId string,
	participant *model.ParticipantDocument,
	proxy *model.ProxyDocument,
) error {
	txnFunc := func(sessCtx mongo.SessionContext) (interface{}, error) {
		participants := db.Client.Database(db.DbName).Collection(model.ParticipantCollection)
		if _, err := participants.InsertOne(sessCtx, participant); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, &DuplicateKeyError{
					Key:     participant.Address,
					Message: "participant already registered",
				}
			}
			return nil, err
		}

		proxies := db.Client.Database(db.DbName).Collection(model.ProxyCollection)
		if _, err := proxies.InsertOne(sessCtx, proxy); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, &DuplicateKeyError{
					Key:     proxy.Address,
					Message: "proxy already provisioned",
				}
			}
			return nil, err
		}

		provisioning := db.Client.Database(db.DbName).Collection(model.ProvisioningCollection)
		if _, err := provisioning.DeleteOne(sessCtx, bson.M{"_id": requestId}); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err := db.TxWithRetries(ctx, txnFunc)
	return err
}
