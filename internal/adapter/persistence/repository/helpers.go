package repository

import (
	"errors"
	"os"

	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// mapConditionErr translates DynamoDB condition failures into the ledger
// conflict sentinel. A cancelled transaction whose reasons include a failed
// condition check means another writer moved the aggregate first; nothing was
// written either way.
func mapConditionErr(err error) error {
	if err == nil {
		return nil
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return interfaces.ErrLedgerConflict
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrLedgerConflict
			}
		}
	}
	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return interfaces.ErrLedgerConflict
	}
	return err
}
