package interfaces

import (
	"context"

	"freelance_marketplace/internal/domain/entities"
)

// IProjectRepository abstracts persistence for Project.
//
// Reads may be served from a cache/replica (eventual consistency); writes are
// strongly consistent conditional updates. Multi-entity transitions (accept,
// submit, settle, terminate) go through ILedgerStore instead.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListOpen(ctx context.Context) ([]entities.Project, error)

	// RequestRevision moves awaiting_review back to in_progress and clears
	// the approval marker.
	RequestRevision(ctx context.Context, id string) (entities.Project, error)

	// SetApprovedSubmission marks the approved submission while the project
	// stays in awaiting_review (settlement confirms completion).
	SetApprovedSubmission(ctx context.Context, id, submissionID string) (entities.Project, error)
}
