package usecase

import "errors"

// Core failure taxonomy. Specific failures wrap one of these with %w so
// handlers and callers can classify with errors.Is.
var (
	// ErrInvalidState: the operation is not permitted in the entity's current
	// state. Surfaced to the caller, never retried automatically.
	ErrInvalidState = errors.New("operation not permitted in current state")

	// ErrUnauthorized: the actor lacks the required relationship to the entity.
	ErrUnauthorized = errors.New("actor not authorized for this entity")

	// ErrDuplicateBid: the freelancer already has a non-withdrawn bid on the project.
	ErrDuplicateBid = errors.New("duplicate bid")

	// ErrGatewayUnavailable: transient gateway failure; the caller may retry
	// with backoff, settlement stays idempotent per contract.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrInvariantViolation: data corruption or programming defect; fatal,
	// nothing was committed.
	ErrInvariantViolation = errors.New("ledger invariant violation")

	ErrProjectNotFound    = errors.New("project not found")
	ErrBidNotFound        = errors.New("bid not found")
	ErrContractNotFound   = errors.New("contract not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidInput       = errors.New("invalid input")
)
