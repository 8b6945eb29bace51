package request

// BidSubmitRequest is the payload for placing a bid on an open project.

type BidSubmitRequest struct {
	Amount                  float64 `json:"amount" binding:"required,gt=0"`
	Proposal                string  `json:"proposal"`
	EstimatedCompletionTime string  `json:"estimated_completion_time"`
}
