package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/knstl/qstaking-service/internal/db/model"
)

func (db *Database) FindPosition(
	ctx context.Context, address, validator string,
) (*model.PositionDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.PositionCollection)
	id := model.PositionId(address, validator)

	var result model.PositionDocument
	err := client.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "position not found",
			}
		}
		return nil, err
	}
	return &result, nil
}

func (db *Database) FindPositionsByAddress(
	ctx context.Context, address string,
) ([]model.PositionDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.PositionCollection)

	cursor, err := client.Find(ctx, bson.M{"address": address})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.PositionDocument
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
