package interfaces

import (
	"context"

	"freelance_marketplace/internal/domain/entities"
)

// IBidRepository abstracts read access to Bid. All bid writes run through
// ILedgerStore so they stay conditioned on the owning project's state.

type IBidRepository interface {
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Bid, error)
}
