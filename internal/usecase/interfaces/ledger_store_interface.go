package interfaces

import (
	"context"
	"errors"

	"freelance_marketplace/internal/domain/entities"
)

// ErrLedgerConflict is returned when a transactional write loses a
// condition check (another writer moved the aggregate first). Callers map it
// to their state-violation error; it never indicates partial writes.
var ErrLedgerConflict = errors.New("ledger transaction conflict")

// ILedgerStore abstracts the multi-entity transactional writes of the
// marketplace ledger. Every method is a single all-or-nothing transaction
// over the project aggregate (project + bids + contract + payment legs);
// condition failures surface as ErrLedgerConflict with nothing written.

type ILedgerStore interface {
	// SubmitBid writes the bid only while its project is still open.
	SubmitBid(ctx context.Context, bid entities.Bid) error

	// WithdrawBid flips a submitted bid to withdrawn while its project is open.
	WithdrawBid(ctx context.Context, bidID, projectID string) error

	// AcceptBid atomically accepts one bid, rejects the others, creates the
	// contract and moves the project to in_progress with the hired freelancer.
	AcceptBid(ctx context.Context, contract entities.Contract, acceptedBidID string, rejectedBidIDs []string) error

	// RecordSubmission writes a new submission version and moves the project
	// to awaiting_review, clearing any prior approval marker.
	RecordSubmission(ctx context.Context, sub entities.WorkSubmission) error

	// FinalizeSettlement writes the fee and payout legs and completes the
	// project and contract in one transaction.
	FinalizeSettlement(ctx context.Context, fee, payout entities.PaymentTransaction, projectID, contractID string) error

	// Terminate force-moves the project (and optionally its contract) to a
	// terminal status, writing the refund leg when one is due.
	Terminate(ctx context.Context, projectID string, projectTo entities.ProjectStatus, contractID string, contractTo entities.ContractStatus, refund *entities.PaymentTransaction) error
}
