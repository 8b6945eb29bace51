package entities

import "time"

// SubmissionFile is a single deliverable attached to a work submission.

type SubmissionFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size,omitempty"`
}

// WorkSubmission is an immutable versioned deliverable for a project.
//
// Storage model (DynamoDB):
//   - PK: project_id, SK: version (number)
//   - GSI1 (id-index): id
//
// Versions are contiguous starting at 1 per project; records are never
// mutated after creation (revision requests create new versions).

type WorkSubmission struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"project_id"`
	FreelancerID string           `json:"freelancer_id"`
	Version      int              `json:"version"`
	Files        []SubmissionFile `json:"files,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	SubmittedAt  time.Time        `json:"submitted_at"`
}
