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
)

// IAdminUseCase is the terminal escape hatch: force-transition a project and
// its contract outside the normal flow.

type IAdminUseCase interface {
	ForceDispute(ctx context.Context, projectID string, actor Actor, reason string) (entities.Project, error)
	CancelProject(ctx context.Context, projectID string, actor Actor, reason string) (entities.Project, error)
}

type AdminUseCase struct {
	projects     interfaces.IProjectRepository
	contracts    interfaces.IContractRepository
	transactions interfaces.ITransactionRepository
	ledger       interfaces.ILedgerStore
	notifier     interfaces.INotificationDispatcher
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(projects interfaces.IProjectRepository, contracts interfaces.IContractRepository, transactions interfaces.ITransactionRepository, ledger interfaces.ILedgerStore, notifier interfaces.INotificationDispatcher) *AdminUseCase {
	return &AdminUseCase{projects: projects, contracts: contracts, transactions: transactions, ledger: ledger, notifier: notifier}
}

// ForceDispute moves the project (and its non-terminated contract) to
// disputed from any non-terminal state. Admin only.
func (u *AdminUseCase) ForceDispute(ctx context.Context, projectID string, actor Actor, reason string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	log.Printf("[admin][usecase] force-dispute start project_id=%s actor_id=%s", projectID, actor.ID)
	if projectID == "" {
		return entities.Project{}, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}
	if !actor.IsAdmin() {
		return entities.Project{}, fmt.Errorf("%w: dispute override requires the admin role", ErrUnauthorized)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if project.Status.IsTerminal() {
		return entities.Project{}, fmt.Errorf("%w: project %s is already terminal (%s)", ErrInvalidState, projectID, project.Status)
	}

	contract, err := u.contracts.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	contractID := ""
	if contract.ID != "" && !contract.Status.IsTerminal() {
		contractID = contract.ID
	}

	if err := u.ledger.Terminate(ctx, projectID, entities.ProjectStatusDisputed, contractID, entities.ContractStatusDisputed, nil); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.Project{}, fmt.Errorf("%w: project %s reached a terminal state first", ErrInvalidState, projectID)
		}
		return entities.Project{}, err
	}
	project.Status = entities.ProjectStatusDisputed
	project.UpdatedAt = time.Now().UTC()

	log.Printf("[admin][usecase] force-dispute success project_id=%s contract_id=%s reason=%q", projectID, contractID, reason)
	emit(ctx, u.notifier, entities.Event{
		Type:      entities.EventDisputed,
		ProjectID: projectID,
		ActorID:   actor.ID,
		Data:      map[string]string{"reason": strings.TrimSpace(reason)},
	})
	return project, nil
}

// CancelProject terminates the project. The owning client may cancel while
// the project is still open; past that point cancellation is an admin
// override. A captured-but-unsettled payment gets a refund leg in the same
// transaction.
func (u *AdminUseCase) CancelProject(ctx context.Context, projectID string, actor Actor, reason string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	log.Printf("[admin][usecase] cancel start project_id=%s actor_id=%s role=%s", projectID, actor.ID, actor.Role)
	if projectID == "" {
		return entities.Project{}, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if project.Status.IsTerminal() {
		return entities.Project{}, fmt.Errorf("%w: project %s is already terminal (%s)", ErrInvalidState, projectID, project.Status)
	}
	if !actor.IsAdmin() {
		if project.ClientID != actor.ID {
			return entities.Project{}, fmt.Errorf("%w: only the project owner or an admin cancels", ErrUnauthorized)
		}
		if project.Status != entities.ProjectStatusOpen {
			return entities.Project{}, fmt.Errorf("%w: project %s is %s, owner cancellation is only allowed while open", ErrInvalidState, projectID, project.Status)
		}
	}

	contract, err := u.contracts.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	contractID := ""
	if contract.ID != "" && !contract.Status.IsTerminal() {
		contractID = contract.ID
	}

	refund, err := u.buildRefundLeg(ctx, project, contract)
	if err != nil {
		return entities.Project{}, err
	}

	if err := u.ledger.Terminate(ctx, projectID, entities.ProjectStatusCancelled, contractID, entities.ContractStatusTerminated, refund); err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.Project{}, fmt.Errorf("%w: project %s reached a terminal state first", ErrInvalidState, projectID)
		}
		return entities.Project{}, err
	}
	project.Status = entities.ProjectStatusCancelled
	// A cancelled project carries no assignment; the ledger write removed it.
	project.FreelancerID = ""
	project.UpdatedAt = time.Now().UTC()

	log.Printf("[admin][usecase] cancel success project_id=%s contract_id=%s refunded=%t", projectID, contractID, refund != nil)
	emit(ctx, u.notifier, entities.Event{
		Type:      entities.EventProjectCancelled,
		ProjectID: projectID,
		ActorID:   actor.ID,
		Data:      map[string]string{"reason": strings.TrimSpace(reason)},
	})
	return project, nil
}

// buildRefundLeg returns the refund transaction for a successful project
// payment that never settled, or nil when no money needs to move back. No fee
// leg exists before settlement, so the refund reverses the full captured
// amount.
func (u *AdminUseCase) buildRefundLeg(ctx context.Context, project entities.Project, contract entities.Contract) (*entities.PaymentTransaction, error) {
	if contract.ID == "" {
		return nil, nil
	}
	payment, err := u.transactions.GetByID(ctx, entities.PaymentLegID(contract.ID))
	if err != nil {
		return nil, err
	}
	if payment.ID == "" || payment.Status != entities.TransactionStatusSuccessful {
		return nil, nil
	}
	if project.Status == entities.ProjectStatusCompleted {
		// Settled money is out of normal cancellation scope.
		return nil, nil
	}

	now := time.Now().UTC()
	return &entities.PaymentTransaction{
		ID:         entities.RefundLegID(project.ID),
		ProjectID:  project.ID,
		ContractID: contract.ID,
		PayerID:    entities.AccountPlatformEscrow,
		PayeeID:    contract.ClientID,
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		Type:       entities.TransactionTypeRefund,
		Status:     entities.TransactionStatusSuccessful,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
