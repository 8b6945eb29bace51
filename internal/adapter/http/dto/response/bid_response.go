package response

import (
	"time"

	"freelance_marketplace/internal/domain/entities"
)

type BidResponse struct {
	ID                      string    `json:"id"`
	ProjectID               string    `json:"project_id"`
	FreelancerID            string    `json:"freelancer_id"`
	Amount                  float64   `json:"amount"`
	Proposal                string    `json:"proposal,omitempty"`
	EstimatedCompletionTime string    `json:"estimated_completion_time,omitempty"`
	Status                  string    `json:"status"`
	BidDate                 time.Time `json:"bid_date"`
}

func FromBid(b entities.Bid) BidResponse {
	return BidResponse{
		ID:                      b.ID,
		ProjectID:               b.ProjectID,
		FreelancerID:            b.FreelancerID,
		Amount:                  b.Amount,
		Proposal:                b.Proposal,
		EstimatedCompletionTime: b.EstimatedCompletionTime,
		Status:                  string(b.Status),
		BidDate:                 b.BidDate,
	}
}

func FromBids(bids []entities.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, FromBid(b))
	}
	return out
}
