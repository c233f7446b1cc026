package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/knstl/qstaking-service/internal/utils"
)

const (
	maxTxRetries       = 3
	initialTxBackoff   = 200 * time.Millisecond
	txBackoffMultipler = 2
)

// TxWithRetries runs txnFunc inside a mongo session transaction and retries
// transient failures with exponential backoff. Non-transient errors abort
// immediately.
func (db *Database) TxWithRetries(
	ctx context.Context,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	session, err := db.Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	backoff := initialTxBackoff
	var result interface{}
	for attempt := 1; attempt <= maxTxRetries; attempt++ {
		result, err = session.WithTransaction(ctx, txnFunc)
		if err == nil {
			return result, nil
		}
		if !isTransientTxError(err) || attempt == maxTxRetries {
			return nil, err
		}
		log.Ctx(ctx).Warn().Err(err).
			Int("attempt", attempt).
			Msg("transient transaction error, retrying")
		utils.Sleep(backoff)
		backoff *= txBackoffMultipler
	}
	return nil, err
}

func isTransientTxError(err error) bool {
	if cmdErr, ok := err.(mongo.CommandError); ok {
		return cmdErr.HasErrorLabel("TransientTransactionError") ||
			cmdErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}
