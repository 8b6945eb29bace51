package interfaces

import (
	"context"

	"freelance_marketplace/internal/domain/entities"
)

// IContractRepository abstracts read access to Contract. Contract creation
// happens inside the accept-bid ledger transaction; status changes happen in
// settlement/termination transactions.

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contract, error)

	// GetByProjectID returns the project's contract (at most one exists that
	// is not terminated), or a zero contract when none was ever formed.
	GetByProjectID(ctx context.Context, projectID string) (entities.Contract, error)

	ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error)
	ListByFreelancerID(ctx context.Context, freelancerID string) ([]entities.Contract, error)
}
