package entities

import "time"

// ProjectStatus represents the lifecycle of a posted project.
//
// Domain notes:
//   - The marketplace core is the source of truth for project state.
//   - Transitions are validated against projectTransitions; free-form
//     status writes are never accepted.

type ProjectStatus string

const (
	ProjectStatusOpen           ProjectStatus = "open"
	ProjectStatusInProgress     ProjectStatus = "in_progress"
	ProjectStatusAwaitingReview ProjectStatus = "awaiting_review"
	ProjectStatusCompleted      ProjectStatus = "completed"
	ProjectStatusCancelled      ProjectStatus = "cancelled"
	ProjectStatusDisputed       ProjectStatus = "disputed"
)

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusOpen:           {ProjectStatusInProgress, ProjectStatusCancelled, ProjectStatusDisputed},
	ProjectStatusInProgress:     {ProjectStatusAwaitingReview, ProjectStatusCancelled, ProjectStatusDisputed},
	ProjectStatusAwaitingReview: {ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled, ProjectStatusDisputed},
	ProjectStatusCompleted:      {},
	ProjectStatusCancelled:      {},
	ProjectStatusDisputed:       {},
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s ProjectStatus) IsTerminal() bool {
	return len(projectTransitions[s]) == 0
}

// Project is a client-posted project persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Invariant: FreelancerID is set iff Status is in_progress, awaiting_review,
// completed or disputed. ApprovedSubmissionID marks the submission accepted by
// the client; settlement requires it and a revision request clears it.

type Project struct {
	ID                   string        `json:"id"`
	ClientID             string        `json:"client_id"`
	FreelancerID         string        `json:"freelancer_id,omitempty"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Budget               float64       `json:"budget,omitempty"`
	Deadline             *time.Time    `json:"deadline,omitempty"`
	Tags                 []string      `json:"tags,omitempty"`
	Status               ProjectStatus `json:"status"`
	ApprovedSubmissionID string        `json:"approved_submission_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
