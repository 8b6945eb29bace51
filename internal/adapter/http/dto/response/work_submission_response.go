package response

import (
	"time"

	"freelance_marketplace/internal/domain/entities"
)

type SubmissionFileResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size,omitempty"`
}

type WorkSubmissionResponse struct {
	ID           string                   `json:"id"`
	ProjectID    string                   `json:"project_id"`
	FreelancerID string                   `json:"freelancer_id"`
	Version      int                      `json:"version"`
	Files        []SubmissionFileResponse `json:"files"`
	Notes        string                   `json:"notes,omitempty"`
	SubmittedAt  time.Time                `json:"submitted_at"`
}

func FromWorkSubmission(s entities.WorkSubmission) WorkSubmissionResponse {
	files := make([]SubmissionFileResponse, 0, len(s.Files))
	for _, f := range s.Files {
		files = append(files, SubmissionFileResponse{Filename: f.Filename, URL: f.URL, Size: f.Size})
	}
	return WorkSubmissionResponse{
		ID:           s.ID,
		ProjectID:    s.ProjectID,
		FreelancerID: s.FreelancerID,
		Version:      s.Version,
		Files:        files,
		Notes:        s.Notes,
		SubmittedAt:  s.SubmittedAt,
	}
}

func FromWorkSubmissions(subs []entities.WorkSubmission) []WorkSubmissionResponse {
	out := make([]WorkSubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromWorkSubmission(s))
	}
	return out
}
