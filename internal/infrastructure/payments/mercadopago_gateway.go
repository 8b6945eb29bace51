package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway captures escrow funds through Mercado Pago. The
// settlement leg id travels as the external reference; Capture searches the
// provider for an approved payment with that reference before creating a new
// one, so a retried capture of the same leg adopts the earlier charge instead
// of charging twice. Mercado Pago does not deduplicate on external_reference
// itself, only on the per-request idempotency key the SDK generates.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, amount float64, currency, payerID, reference string) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockCapture(amount, currency, payerID, reference)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] capture start reference=%s amount=%.2f currency=%s", reference, amount, currency)

	if id, raw, ok := g.findApprovedByReference(ctx, reference); ok {
		return id, raw, nil
	}

	req := payment.Request{
		TransactionAmount: amount,
		Description:       "project escrow capture",
		ExternalReference: reference,
		Payer: &payment.PayerRequest{
			ID: payerID,
		},
		Metadata: map[string]any{
			"currency": currency,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", reference, err)
		return "", nil, err
	}
	if resp.Status != "approved" {
		log.Printf("[payment][gateway] capture not approved reference=%s provider_status=%s", reference, resp.Status)
		return "", nil, fmt.Errorf("payment %d not approved: status=%s detail=%s", resp.ID, resp.Status, resp.StatusDetail)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", nil, err
	}
	log.Printf("[payment][gateway] capture success reference=%s provider_payment_id=%d", reference, resp.ID)

	return fmt.Sprintf("%d", resp.ID), b, nil
}

// findApprovedByReference looks the external reference up at the provider. A
// search failure is treated as no match; the conditional create of the payment
// leg upstream already bounds how often this path runs.
func (g *MercadoPagoGateway) findApprovedByReference(ctx context.Context, reference string) (string, json.RawMessage, bool) {
	resp, err := g.client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": reference,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] reference search failed reference=%s err=%v", reference, err)
		return "", nil, false
	}
	if resp == nil {
		return "", nil, false
	}

	for _, found := range resp.Results {
		if found.Status != "approved" {
			continue
		}
		b, err := json.Marshal(found)
		if err != nil {
			log.Printf("[payment][gateway] search response marshal failed err=%v", err)
			return "", nil, false
		}
		log.Printf("[payment][gateway] adopted existing provider payment reference=%s provider_payment_id=%d", reference, found.ID)
		return fmt.Sprintf("%d", found.ID), b, true
	}
	return "", nil, false
}

func (g *MercadoPagoGateway) mockCapture(amount float64, currency, payerID, reference string) (string, json.RawMessage, error) {
	// The id is derived from the reference so a retried mock capture returns
	// the same provider payment, mirroring the reference lookup in live mode.
	id := "mock-" + reference
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"transaction_amount": amount,
		"currency_id":        currency,
		"external_reference": reference,
		"payer":              map[string]any{"id": payerID},
		"date_created":       now,
		"date_approved":      now,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", nil, err
	}

	log.Printf("[payment][gateway] mock capture success reference=%s provider_payment_id=%s", reference, id)
	return id, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
