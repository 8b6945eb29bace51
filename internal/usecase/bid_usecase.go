package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IBidUseCase owns the bid lifecycle against an open project.

type IBidUseCase interface {
	SubmitBid(ctx context.Context, projectID string, actor Actor, amount float64, proposal, estimatedCompletionTime string) (entities.Bid, error)
	WithdrawBid(ctx context.Context, bidID string, actor Actor) (entities.Bid, error)
	ListBidsByProject(ctx context.Context, projectID string, actor Actor) ([]entities.Bid, error)
	GetBid(ctx context.Context, bidID string, actor Actor) (entities.Bid, error)
}

type BidUseCase struct {
	bids     interfaces.IBidRepository
	projects interfaces.IProjectRepository
	ledger   interfaces.ILedgerStore
	notifier interfaces.INotificationDispatcher
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(bids interfaces.IBidRepository, projects interfaces.IProjectRepository, ledger interfaces.ILedgerStore, notifier interfaces.INotificationDispatcher) *BidUseCase {
	return &BidUseCase{bids: bids, projects: projects, ledger: ledger, notifier: notifier}
}

func (u *BidUseCase) SubmitBid(ctx context.Context, projectID string, actor Actor, amount float64, proposal, estimatedCompletionTime string) (entities.Bid, error) {
	projectID = strings.TrimSpace(projectID)
	log.Printf("[bid][usecase] submit start project_id=%s freelancer_id=%s amount=%.2f", projectID, actor.ID, amount)
	if projectID == "" {
		return entities.Bid{}, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}
	if !actor.Valid() {
		return entities.Bid{}, fmt.Errorf("%w: missing actor id", ErrUnauthorized)
	}
	if actor.Role != RoleFreelancer {
		return entities.Bid{}, fmt.Errorf("%w: only freelancers submit bids", ErrUnauthorized)
	}
	if amount <= 0 {
		return entities.Bid{}, fmt.Errorf("%w: bid amount must be positive", ErrInvalidInput)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Bid{}, err
	}
	if project.ID == "" {
		return entities.Bid{}, ErrProjectNotFound
	}
	if project.Status != entities.ProjectStatusOpen {
		return entities.Bid{}, fmt.Errorf("%w: project %s is %s, bids need an open project", ErrInvalidState, projectID, project.Status)
	}
	if project.ClientID == actor.ID {
		return entities.Bid{}, fmt.Errorf("%w: clients cannot bid on their own project", ErrUnauthorized)
	}

	// One active bid per freelancer per project.
	existing, err := u.bids.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.Bid{}, err
	}
	for _, b := range existing {
		if b.FreelancerID == actor.ID && b.Status != entities.BidStatusWithdrawn {
			return entities.Bid{}, fmt.Errorf("%w: freelancer %s already bid on project %s", ErrDuplicateBid, actor.ID, projectID)
		}
	}

	bid := entities.Bid{
		ID:                      uuid.NewString(),
		ProjectID:               projectID,
		FreelancerID:            actor.ID,
		Amount:                  amount,
		Proposal:                strings.TrimSpace(proposal),
		EstimatedCompletionTime: strings.TrimSpace(estimatedCompletionTime),
		Status:                  entities.BidStatusSubmitted,
		BidDate:                 time.Now().UTC(),
	}
	if err := u.ledger.SubmitBid(ctx, bid); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			// The project left 'open' between the read and the write.
			return entities.Bid{}, fmt.Errorf("%w: project %s is no longer open", ErrInvalidState, projectID)
		}
		log.Printf("[bid][usecase] submit ledger write failed project_id=%s err=%v", projectID, err)
		return entities.Bid{}, err
	}

	log.Printf("[bid][usecase] submit success project_id=%s bid_id=%s", projectID, bid.ID)
	emit(ctx, u.notifier, entities.Event{
		Type:        entities.EventBidSubmitted,
		ProjectID:   projectID,
		ActorID:     actor.ID,
		RecipientID: project.ClientID,
		Data:        map[string]string{"bid_id": bid.ID},
	})
	return bid, nil
}

func (u *BidUseCase) WithdrawBid(ctx context.Context, bidID string, actor Actor) (entities.Bid, error) {
	bidID = strings.TrimSpace(bidID)
	log.Printf("[bid][usecase] withdraw start bid_id=%s freelancer_id=%s", bidID, actor.ID)
	if bidID == "" {
		return entities.Bid{}, fmt.Errorf("%w: empty bid id", ErrInvalidInput)
	}

	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if bid.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	if bid.FreelancerID != actor.ID {
		return entities.Bid{}, fmt.Errorf("%w: bid %s belongs to another freelancer", ErrUnauthorized, bidID)
	}
	if bid.Status != entities.BidStatusSubmitted {
		return entities.Bid{}, fmt.Errorf("%w: bid %s is %s, only submitted bids can be withdrawn", ErrInvalidState, bidID, bid.Status)
	}

	if err := u.ledger.WithdrawBid(ctx, bidID, bid.ProjectID); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.Bid{}, fmt.Errorf("%w: bid %s or its project changed state", ErrInvalidState, bidID)
		}
		return entities.Bid{}, err
	}
	bid.Status = entities.BidStatusWithdrawn

	log.Printf("[bid][usecase] withdraw success bid_id=%s project_id=%s", bidID, bid.ProjectID)
	project, err := u.projects.GetByID(ctx, bid.ProjectID)
	if err == nil && project.ID != "" {
		emit(ctx, u.notifier, entities.Event{
			Type:        entities.EventBidWithdrawn,
			ProjectID:   bid.ProjectID,
			ActorID:     actor.ID,
			RecipientID: project.ClientID,
			Data:        map[string]string{"bid_id": bidID},
		})
	}
	return bid, nil
}

func (u *BidUseCase) ListBidsByProject(ctx context.Context, projectID string, actor Actor) ([]entities.Bid, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ID == "" {
		return nil, ErrProjectNotFound
	}
	// Only the project owner sees the full bid list.
	if project.ClientID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only the project owner lists bids", ErrUnauthorized)
	}
	return u.bids.ListByProjectID(ctx, projectID)
}

func (u *BidUseCase) GetBid(ctx context.Context, bidID string, actor Actor) (entities.Bid, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Bid{}, fmt.Errorf("%w: empty bid id", ErrInvalidInput)
	}

	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if bid.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	if bid.FreelancerID == actor.ID || actor.IsAdmin() {
		return bid, nil
	}
	project, err := u.projects.GetByID(ctx, bid.ProjectID)
	if err != nil {
		return entities.Bid{}, err
	}
	if project.ClientID != actor.ID {
		return entities.Bid{}, fmt.Errorf("%w: bid %s is not visible to this actor", ErrUnauthorized, bidID)
	}
	return bid, nil
}
