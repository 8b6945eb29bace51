package entities

import "time"

// TransactionStatus represents the processing outcome of a money movement.

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusSuccessful TransactionStatus = "successful"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusRefunded   TransactionStatus = "refunded"
)

var transactionTransitions = map[TransactionStatus][]TransactionStatus{
	TransactionStatusPending:    {TransactionStatusSuccessful, TransactionStatusFailed},
	TransactionStatusSuccessful: {TransactionStatusRefunded},
	TransactionStatusFailed:     {TransactionStatusPending},
	TransactionStatusRefunded:   {},
}

func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range transactionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransactionType classifies a payment ledger leg.

type TransactionType string

const (
	TransactionTypeProjectPayment TransactionType = "project_payment"
	TransactionTypePlatformFee    TransactionType = "platform_fee"
	TransactionTypeRefund         TransactionType = "refund"
	TransactionTypeWithdrawal     TransactionType = "withdrawal"
)

// Well-known internal accounts used as payer/payee on platform legs.
const (
	AccountPlatformEscrow = "platform-escrow"
	AccountPlatformFees   = "platform-fees"
)

// DefaultCurrency applies when a caller does not specify one.
const DefaultCurrency = "USD"

// PaymentTransaction is a single leg in the settlement ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - GSI2 (contract_id-index): contract_id
//
// Settlement legs use deterministic ids derived from the contract id
// ({contract_id}-payment, {contract_id}-fee, {contract_id}-payout) so a
// conditional put makes each leg exactly-once. Invariant: for a completed
// project, payment amount = fee amount + payout amount.

type PaymentTransaction struct {
	ID               string            `json:"id"`
	ProjectID        string            `json:"project_id,omitempty"`
	ContractID       string            `json:"contract_id,omitempty"`
	PayerID          string            `json:"payer_id"`
	PayeeID          string            `json:"payee_id"`
	Amount           float64           `json:"amount"`
	Currency         string            `json:"currency"`
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	GatewayReference string            `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Deterministic settlement leg ids (the contract id is the idempotence key).

func PaymentLegID(contractID string) string { return contractID + "-payment" }
func FeeLegID(contractID string) string     { return contractID + "-fee" }
func PayoutLegID(contractID string) string  { return contractID + "-payout" }
func RefundLegID(projectID string) string   { return projectID + "-refund" }
