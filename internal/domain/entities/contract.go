package entities

import "time"

// ContractStatus represents the lifecycle of a formed contract.

type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusCompleted  ContractStatus = "completed"
	ContractStatusTerminated ContractStatus = "terminated"
	ContractStatusDisputed   ContractStatus = "disputed"
)

var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusActive:     {ContractStatusCompleted, ContractStatusTerminated, ContractStatusDisputed},
	ContractStatusCompleted:  {},
	ContractStatusTerminated: {},
	ContractStatusDisputed:   {},
}

func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	for _, allowed := range contractTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ContractStatus) IsTerminal() bool {
	return len(contractTransitions[s]) == 0
}

// Contract binds a client and a freelancer to an accepted bid amount.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - GSI2 (client_id-index): client_id
//   - GSI3 (freelancer_id-index): freelancer_id
//
// Invariant: exactly one non-terminated contract exists per in-progress
// project. The contract id is the settlement idempotence key.

type Contract struct {
	ID           string         `json:"id"`
	ProjectID    string         `json:"project_id"`
	ClientID     string         `json:"client_id"`
	FreelancerID string         `json:"freelancer_id"`
	Terms        string         `json:"terms,omitempty"`
	AgreedAmount float64        `json:"agreed_amount"`
	Status       ContractStatus `json:"status"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
