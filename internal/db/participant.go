package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/knstl/qstaking-service/internal/db/model"
)

func (db *Database) FindParticipant(
	ctx context.Context, address string,
) (*model.ParticipantDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ParticipantCollection)

	var result model.ParticipantDocument
	err := client.FindOne(ctx, bson.M{"_id": address}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "participant not registered",
			}
		}
		return nil, err
	}
	return &result, nil
}

// ApplyLedgerUpdate commits the rewritten participant, position and proxy
// documents of one external call in a single transaction. The proxy write
// mirrors SaveProxyTotals: counters and queue only, the config copy is
// immutable after provisioning.
func (db *Database) ApplyLedgerUpdate(ctx context.Context, update *LedgerUpdate) error {
	txnFunc := func(sessCtx mongo.SessionContext) (interface{}, error) {
		upsert := options.Replace().SetUpsert(true)

		if update.Participant != nil {
			participants := db.Client.Database(db.DbName).Collection(model.ParticipantCollection)
			filter := bson.M{"_id": update.Participant.Address}
			if _, err := participants.ReplaceOne(sessCtx, filter, update.Participant, upsert); err != nil {
				return nil, err
			}
		}

		positions := db.Client.Database(db.DbName).Collection(model.PositionCollection)
		for _, position := range update.Positions {
			filter := bson.M{"_id": position.Id}
			if _, err := positions.ReplaceOne(sessCtx, filter, position, upsert); err != nil {
				return nil, err
			}
		}

		if update.Proxy != nil {
			proxies := db.Client.Database(db.DbName).Collection(model.ProxyCollection)
			filter := bson.M{"_id": update.Proxy.Address}
			set := bson.M{"$set": bson.M{
				"bonded":     update.Proxy.Bonded,
				"compounded": update.Proxy.Compounded,
				"unbondings": update.Proxy.Unbondings,
			}}
			result, err := proxies.UpdateOne(sessCtx, filter, set)
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				return nil, &NotFoundError{
					Key:     update.Proxy.Address,
					Message: "proxy not found",
				}
			}
		}
		return nil, nil
	}

	_, err := db.TxWithRetries(ctx, txnFunc)
	return err
}
