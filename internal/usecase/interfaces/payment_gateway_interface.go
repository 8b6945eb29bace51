package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Capture charges the payer for the given amount and returns the provider's
// transaction id plus the raw provider response for traceability. It is the
// only call in the core that blocks on a third party; callers bound it with a
// context timeout and rely on the settlement idempotence key for retries.
type IPaymentGateway interface {
	Capture(ctx context.Context, amount float64, currency, payerID, reference string) (gatewayTxnID string, providerResponse json.RawMessage, err error)
}
