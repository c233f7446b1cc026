package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/knstl/qstaking-service/internal/db/model"
)

// SaveUnprocessableMessage puts a failed queue message into a dead-letter
// collection for manual inspection and replay.
func (db *Database) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	unprocessableMsgClient := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)
	_, err := unprocessableMsgClient.InsertOne(ctx, model.NewUnprocessableMessageDocument(messageBody, receipt))
	return err
}

func (db *Database) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)

	cursor, err := client.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.UnprocessableMessageDocument
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *Database) DeleteUnprocessableMessage(ctx context.Context, receipt interface{}) error {
	client := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)
	_, err := client.DeleteOne(ctx, bson.M{"receipt": receipt})
	return err
}
