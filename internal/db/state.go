package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/knstl/qstaking-service/internal/db/model"
)

func (db *Database) GetEngineState(ctx context.Context) (*model.EngineStateDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.EngineStateCollection)
	filter := bson.M{"_id": model.EngineStateId}

	var result model.EngineStateDocument
	err := client.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.EngineStateId,
				Message: "engine state not found",
			}
		}
		return nil, err
	}
	return &result, nil
}

// SetIssuerAddress back-fills the issuer address once. A second write with a
// different address fails so the issuer can never be silently swapped.
func (db *Database) SetIssuerAddress(ctx context.Context, address string) error {
	client := db.Client.Database(db.DbName).Collection(model.EngineStateCollection)
	filter := bson.M{
		"_id": model.EngineStateId,
		"$or": []bson.M{
			{"issuer_address": ""},
			{"issuer_address": address},
		},
	}
	update := bson.M{"$set": bson.M{"issuer_address": address}}
	options := options.Update().SetUpsert(true)

	_, err := client.UpdateOne(ctx, filter, update, options)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     model.EngineStateId,
				Message: "issuer address already set",
			}
		}
		return err
	}
	return nil
}
