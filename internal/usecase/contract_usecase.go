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

// IContractUseCase converts an accepted bid into a contract and exposes
// contract lookups to its parties.

type IContractUseCase interface {
	AcceptBid(ctx context.Context, projectID, bidID string, actor Actor) (entities.Contract, error)
	GetContract(ctx context.Context, contractID string, actor Actor) (entities.Contract, error)
	ListContractsByActor(ctx context.Context, actor Actor) ([]entities.Contract, error)
}

type ContractUseCase struct {
	contracts interfaces.IContractRepository
	bids      interfaces.IBidRepository
	projects  interfaces.IProjectRepository
	ledger    interfaces.ILedgerStore
	notifier  interfaces.INotificationDispatcher
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(contracts interfaces.IContractRepository, bids interfaces.IBidRepository, projects interfaces.IProjectRepository, ledger interfaces.ILedgerStore, notifier interfaces.INotificationDispatcher) *ContractUseCase {
	return &ContractUseCase{contracts: contracts, bids: bids, projects: projects, ledger: ledger, notifier: notifier}
}

// AcceptBid runs the four-step acceptance as one ledger transaction: accept
// the chosen bid, reject the other submitted bids, create the contract, move
// the project to in_progress with the hired freelancer. Concurrent accepts on
// the same project leave exactly one winner; the rest observe InvalidState.
func (u *ContractUseCase) AcceptBid(ctx context.Context, projectID, bidID string, actor Actor) (entities.Contract, error) {
	projectID = strings.TrimSpace(projectID)
	bidID = strings.TrimSpace(bidID)
	log.Printf("[contract][usecase] accept start project_id=%s bid_id=%s client_id=%s", projectID, bidID, actor.ID)
	if projectID == "" || bidID == "" {
		return entities.Contract{}, fmt.Errorf("%w: project id and bid id are required", ErrInvalidInput)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Contract{}, err
	}
	if project.ID == "" {
		return entities.Contract{}, ErrProjectNotFound
	}
	if project.ClientID != actor.ID && !actor.IsAdmin() {
		return entities.Contract{}, fmt.Errorf("%w: only the project owner accepts bids", ErrUnauthorized)
	}
	if project.Status != entities.ProjectStatusOpen {
		return entities.Contract{}, fmt.Errorf("%w: project %s is %s, acceptance needs an open project", ErrInvalidState, projectID, project.Status)
	}

	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return entities.Contract{}, err
	}
	if bid.ID == "" {
		return entities.Contract{}, ErrBidNotFound
	}
	if bid.ProjectID != projectID {
		return entities.Contract{}, fmt.Errorf("%w: bid %s does not belong to project %s", ErrInvalidState, bidID, projectID)
	}
	if bid.Status != entities.BidStatusSubmitted {
		return entities.Contract{}, fmt.Errorf("%w: bid %s is %s, only submitted bids can be accepted", ErrInvalidState, bidID, bid.Status)
	}

	all, err := u.bids.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.Contract{}, err
	}
	rejectedIDs := make([]string, 0, len(all))
	rejectedFreelancers := make([]string, 0, len(all))
	for _, b := range all {
		if b.ID != bidID && b.Status == entities.BidStatusSubmitted {
			rejectedIDs = append(rejectedIDs, b.ID)
			rejectedFreelancers = append(rejectedFreelancers, b.FreelancerID)
		}
	}

	now := time.Now().UTC()
	contract := entities.Contract{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		ClientID:     project.ClientID,
		FreelancerID: bid.FreelancerID,
		AgreedAmount: bid.Amount,
		Status:       entities.ContractStatusActive,
		StartDate:    now,
		CreatedAt:    now,
	}

	if err := u.ledger.AcceptBid(ctx, contract, bidID, rejectedIDs); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			// Lost the acceptance race or the project state moved underneath us.
			return entities.Contract{}, fmt.Errorf("%w: project %s was not open at transaction time", ErrInvalidState, projectID)
		}
		log.Printf("[contract][usecase] accept ledger write failed project_id=%s bid_id=%s err=%v", projectID, bidID, err)
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] accept success project_id=%s bid_id=%s contract_id=%s amount=%.2f rejected=%d",
		projectID, bidID, contract.ID, contract.AgreedAmount, len(rejectedIDs))

	emit(ctx, u.notifier, entities.Event{
		Type:        entities.EventBidAccepted,
		ProjectID:   projectID,
		ActorID:     actor.ID,
		RecipientID: bid.FreelancerID,
		Data:        map[string]string{"bid_id": bidID, "contract_id": contract.ID},
	})
	for i, fid := range rejectedFreelancers {
		emit(ctx, u.notifier, entities.Event{
			Type:        entities.EventBidRejected,
			ProjectID:   projectID,
			ActorID:     actor.ID,
			RecipientID: fid,
			Data:        map[string]string{"bid_id": rejectedIDs[i]},
		})
	}
	return contract, nil
}

func (u *ContractUseCase) GetContract(ctx context.Context, contractID string, actor Actor) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, fmt.Errorf("%w: empty contract id", ErrInvalidInput)
	}

	c, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	if c.ClientID != actor.ID && c.FreelancerID != actor.ID && !actor.IsAdmin() {
		return entities.Contract{}, fmt.Errorf("%w: contract %s is only visible to its parties", ErrUnauthorized, contractID)
	}
	return c, nil
}

func (u *ContractUseCase) ListContractsByActor(ctx context.Context, actor Actor) ([]entities.Contract, error) {
	if !actor.Valid() {
		return nil, fmt.Errorf("%w: missing actor id", ErrUnauthorized)
	}
	switch actor.Role {
	case RoleClient:
		return u.contracts.ListByClientID(ctx, actor.ID)
	case RoleFreelancer:
		return u.contracts.ListByFreelancerID(ctx, actor.ID)
	default:
		return []entities.Contract{}, nil
	}
}
