package response

import (
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase"
)

type PaymentTransactionResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id,omitempty"`
	ContractID       string    `json:"contract_id,omitempty"`
	PayerID          string    `json:"payer_id"`
	PayeeID          string    `json:"payee_id"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	GatewayReference string    `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPaymentTransaction(t entities.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		ID:               t.ID,
		ProjectID:        t.ProjectID,
		ContractID:       t.ContractID,
		PayerID:          t.PayerID,
		PayeeID:          t.PayeeID,
		Amount:           t.Amount,
		Currency:         t.Currency,
		Type:             string(t.Type),
		Status:           string(t.Status),
		GatewayReference: t.GatewayReference,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromPaymentTransactions(legs []entities.PaymentTransaction) []PaymentTransactionResponse {
	out := make([]PaymentTransactionResponse, 0, len(legs))
	for _, leg := range legs {
		out = append(out, FromPaymentTransaction(leg))
	}
	return out
}

// SettlementResponse reports the three ledger legs written for a completed
// project and whether this call performed the settlement or replayed it.

type SettlementResponse struct {
	ProjectID      string                     `json:"project_id"`
	ContractID     string                     `json:"contract_id"`
	AmountCaptured float64                    `json:"amount_captured"`
	Fee            float64                    `json:"fee"`
	Payout         float64                    `json:"payout"`
	AlreadySettled bool                       `json:"already_settled"`
	Payment        PaymentTransactionResponse `json:"payment"`
	PlatformFee    PaymentTransactionResponse `json:"platform_fee"`
	FreelancerPay  PaymentTransactionResponse `json:"freelancer_payout"`
}

func FromSettlementResult(r usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{
		ProjectID:      r.ProjectID,
		ContractID:     r.ContractID,
		AmountCaptured: r.AmountCaptured,
		Fee:            r.Fee,
		Payout:         r.Payout,
		AlreadySettled: r.AlreadySettled,
		Payment:        FromPaymentTransaction(r.PaymentTransaction),
		PlatformFee:    FromPaymentTransaction(r.FeeTransaction),
		FreelancerPay:  FromPaymentTransaction(r.PayoutTransaction),
	}
}
