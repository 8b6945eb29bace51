package response

import (
	"time"

	"freelance_marketplace/internal/domain/entities"
)

type ContractResponse struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	ClientID     string     `json:"client_id"`
	FreelancerID string     `json:"freelancer_id"`
	Terms        string     `json:"terms,omitempty"`
	AgreedAmount float64    `json:"agreed_amount"`
	Status       string     `json:"status"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		ProjectID:    c.ProjectID,
		ClientID:     c.ClientID,
		FreelancerID: c.FreelancerID,
		Terms:        c.Terms,
		AgreedAmount: c.AgreedAmount,
		Status:       string(c.Status),
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		CreatedAt:    c.CreatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}
