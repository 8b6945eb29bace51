package interfaces

import (
	"context"

	"freelance_marketplace/internal/domain/entities"
)

// ITransactionRepository abstracts persistence for PaymentTransaction.
//
// Create is a conditional put on the transaction id; with the deterministic
// settlement leg ids this is what makes each leg exactly-once. Fee/payout
// legs are written through ILedgerStore.FinalizeSettlement instead.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.PaymentTransaction, error)

	// MarkStatus updates the processing status (and gateway reference when
	// non-empty) of an existing transaction. Implementations enforce the leg
	// transition table and return ErrLedgerConflict when the stored status no
	// longer permits the transition, so a stale mark never overwrites a leg
	// that already moved on.
	MarkStatus(ctx context.Context, id string, status entities.TransactionStatus, gatewayRef string) (entities.PaymentTransaction, error)
}
