package response

import (
	"time"

	"freelance_marketplace/internal/domain/entities"
)

type ProjectResponse struct {
	ID                   string     `json:"id"`
	ClientID             string     `json:"client_id"`
	FreelancerID         string     `json:"freelancer_id,omitempty"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Budget               float64    `json:"budget"`
	Deadline             *time.Time `json:"deadline,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Status               string     `json:"status"`
	ApprovedSubmissionID string     `json:"approved_submission_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		ClientID:             p.ClientID,
		FreelancerID:         p.FreelancerID,
		Title:                p.Title,
		Description:          p.Description,
		Budget:               p.Budget,
		Deadline:             p.Deadline,
		Tags:                 p.Tags,
		Status:               string(p.Status),
		ApprovedSubmissionID: p.ApprovedSubmissionID,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
