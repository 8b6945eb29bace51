package request

// SettleRequest optionally pins the gateway reference for the escrow capture.
// When empty the deterministic payment leg id is used.

type SettleRequest struct {
	PaymentReference string `json:"payment_reference"`
}

// TerminateRequest carries the reason recorded on a cancel or dispute.

type TerminateRequest struct {
	Reason string `json:"reason"`
}
