package interfaces

import (
	"context"

	"freelance_marketplace/internal/domain/entities"
)

// ISubmissionRepository abstracts read access to WorkSubmission. Creation is
// transactional (ILedgerStore.RecordSubmission) so version numbers stay
// contiguous under concurrent submits.

type ISubmissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.WorkSubmission, error)
	GetLatestByProjectID(ctx context.Context, projectID string) (entities.WorkSubmission, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.WorkSubmission, error)
}
