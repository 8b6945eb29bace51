package entities

import "time"

// BidStatus represents the lifecycle of a freelancer bid.

type BidStatus string

const (
	BidStatusSubmitted BidStatus = "submitted"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

var bidTransitions = map[BidStatus][]BidStatus{
	BidStatusSubmitted: {BidStatusAccepted, BidStatusRejected, BidStatusWithdrawn},
	BidStatusAccepted:  {},
	BidStatusRejected:  {},
	BidStatusWithdrawn: {},
}

func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	for _, allowed := range bidTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Bid is a freelancer offer on an open project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Invariants: at most one bid per project holds status=accepted; once the
// project leaves 'open' no bid moves to submitted or withdrawn.

type Bid struct {
	ID                      string    `json:"id"`
	ProjectID               string    `json:"project_id"`
	FreelancerID            string    `json:"freelancer_id"`
	Amount                  float64   `json:"amount"`
	Proposal                string    `json:"proposal"`
	EstimatedCompletionTime string    `json:"estimated_completion_time,omitempty"`
	Status                  BidStatus `json:"status"`
	BidDate                 time.Time `json:"bid_date"`
}
