package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/knstl/qstaking-service/internal/db/model"
)

func (db *Database) FindProxy(ctx context.Context, address string) (*model.ProxyDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ProxyCollection)

	var result model.ProxyDocument
	err := client.FindOne(ctx, bson.M{"_id": address}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "proxy not found",
			}
		}
		return nil, err
	}
	return &result, nil
}

func (db *Database) SaveProxy(ctx context.Context, doc *model.ProxyDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.ProxyCollection)
	_, err := client.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.Address,
				Message: "proxy already provisioned",
			}
		}
		return err
	}
	return nil
}

// SaveProxyTotals rewrites the counters and unbonding queue of an existing
// proxy. The config copy is immutable after provisioning and is left alone.
func (db *Database) SaveProxyTotals(ctx context.Context, doc *model.ProxyDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.ProxyCollection)
	filter := bson.M{"_id": doc.Address}
	update := bson.M{"$set": bson.M{
		"bonded":     doc.Bonded,
		"compounded": doc.Compounded,
		"unbondings": doc.Unbondings,
	}}

	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     doc.Address,
			Message: "proxy not found",
		}
	}
	return nil
}
