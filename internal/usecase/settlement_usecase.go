package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"
)

const defaultGatewayTimeoutSeconds = 30

// SettlementResult is the outcome of a settle call. A replayed settle
// returns the originally recorded legs with AlreadySettled set.

type SettlementResult struct {
	ProjectID          string
	ContractID         string
	PaymentTransaction entities.PaymentTransaction
	FeeTransaction     entities.PaymentTransaction
	PayoutTransaction  entities.PaymentTransaction
	AmountCaptured     float64
	Fee                float64
	Payout             float64
	AlreadySettled     bool
}

// ISettlementUseCase captures the client payment, withholds the platform fee
// and credits the freelancer. Idempotent per contract: the deterministic leg
// ids make every retry converge on the same three transactions.

type ISettlementUseCase interface {
	Settle(ctx context.Context, projectID string, actor Actor, paymentReference string) (SettlementResult, error)
	ListProjectTransactions(ctx context.Context, projectID string, actor Actor) ([]entities.PaymentTransaction, error)
}

type SettlementUseCase struct {
	transactions interfaces.ITransactionRepository
	contracts    interfaces.IContractRepository
	projects     interfaces.IProjectRepository
	ledger       interfaces.ILedgerStore
	gateway      interfaces.IPaymentGateway
	notifier     interfaces.INotificationDispatcher
	policy       FeePolicy

	gatewayTimeout time.Duration
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(transactions interfaces.ITransactionRepository, contracts interfaces.IContractRepository, projects interfaces.IProjectRepository, ledger interfaces.ILedgerStore, gateway interfaces.IPaymentGateway, notifier interfaces.INotificationDispatcher, policy FeePolicy) *SettlementUseCase {
	return &SettlementUseCase{
		transactions:   transactions,
		contracts:      contracts,
		projects:       projects,
		ledger:         ledger,
		gateway:        gateway,
		notifier:       notifier,
		policy:         policy,
		gatewayTimeout: gatewayTimeoutFromEnv(),
	}
}

func gatewayTimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_TIMEOUT_SECONDS"))
	if raw == "" {
		return defaultGatewayTimeoutSeconds * time.Second
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("[settlement][config] invalid PAYMENT_GATEWAY_TIMEOUT_SECONDS=%q, using default %d", raw, defaultGatewayTimeoutSeconds)
		return defaultGatewayTimeoutSeconds * time.Second
	}
	return time.Duration(secs) * time.Second
}

// Settle processes payment for an approved project.
//
// The payment leg id is derived from the contract id, so the conditional
// create makes the capture attempt exactly-once; a crash between gateway
// success and ledger finalization is recovered by re-running Settle, which
// finds the successful payment leg and resumes at finalization instead of
// charging again. The capture call carries the leg id as its external
// reference and the gateway looks that reference up at the provider before
// creating a new charge, so a re-capture after a lost response adopts the
// earlier provider payment instead of double-charging.
func (u *SettlementUseCase) Settle(ctx context.Context, projectID string, actor Actor, paymentReference string) (SettlementResult, error) {
	projectID = strings.TrimSpace(projectID)
	log.Printf("[settlement][usecase] settle start project_id=%s actor_id=%s", projectID, actor.ID)
	if projectID == "" {
		return SettlementResult{}, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}
	if u.gateway == nil {
		return SettlementResult{}, errors.New("payment gateway not configured")
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return SettlementResult{}, err
	}
	if project.ID == "" {
		return SettlementResult{}, ErrProjectNotFound
	}
	if project.ClientID != actor.ID && !actor.IsAdmin() {
		return SettlementResult{}, fmt.Errorf("%w: only the project client settles payment", ErrUnauthorized)
	}

	contract, err := u.contracts.GetByProjectID(ctx, projectID)
	if err != nil {
		return SettlementResult{}, err
	}

	if project.Status == entities.ProjectStatusCompleted {
		// Idempotent replay after a finished settlement.
		return u.priorResult(ctx, project, contract)
	}
	if project.Status != entities.ProjectStatusAwaitingReview || project.ApprovedSubmissionID == "" {
		return SettlementResult{}, fmt.Errorf("%w: project %s is %s and work is not approved", ErrInvalidState, projectID, project.Status)
	}
	if contract.ID == "" {
		return SettlementResult{}, fmt.Errorf("%w: approved project %s has no contract", ErrInvariantViolation, projectID)
	}
	if contract.Status != entities.ContractStatusActive {
		return SettlementResult{}, fmt.Errorf("%w: contract %s is %s, settlement needs an active contract", ErrInvalidState, contract.ID, contract.Status)
	}

	payment, err := u.ensurePaymentLeg(ctx, project, contract)
	if err != nil {
		return SettlementResult{}, err
	}

	if payment.Status != entities.TransactionStatusSuccessful {
		payment, err = u.capture(ctx, payment, contract, paymentReference)
		if err != nil {
			return SettlementResult{}, err
		}
	} else {
		log.Printf("[settlement][usecase] capture already succeeded, resuming finalization project_id=%s contract_id=%s", projectID, contract.ID)
	}

	return u.finalize(ctx, project, contract, payment)
}

// ensurePaymentLeg creates the pending project_payment leg or adopts one left
// behind by an earlier attempt.
func (u *SettlementUseCase) ensurePaymentLeg(ctx context.Context, project entities.Project, contract entities.Contract) (entities.PaymentTransaction, error) {
	legID := entities.PaymentLegID(contract.ID)
	existing, err := u.transactions.GetByID(ctx, legID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	now := time.Now().UTC()
	leg := entities.PaymentTransaction{
		ID:         legID,
		ProjectID:  project.ID,
		ContractID: contract.ID,
		PayerID:    contract.ClientID,
		PayeeID:    entities.AccountPlatformEscrow,
		Amount:     contract.AgreedAmount,
		Currency:   entities.DefaultCurrency,
		Type:       entities.TransactionTypeProjectPayment,
		Status:     entities.TransactionStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.transactions.Create(ctx, leg)
	if errors.Is(err, interfaces.ErrLedgerConflict) {
		// A concurrent settle created the leg first; adopt it.
		return u.transactions.GetByID(ctx, legID)
	}
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return created, nil
}

func (u *SettlementUseCase) capture(ctx context.Context, payment entities.PaymentTransaction, contract entities.Contract, paymentReference string) (entities.PaymentTransaction, error) {
	if payment.Status == entities.TransactionStatusFailed {
		// A failed attempt is retryable; move it back to pending first.
		updated, err := u.transactions.MarkStatus(ctx, payment.ID, entities.TransactionStatusPending, "")
		switch {
		case errors.Is(err, interfaces.ErrLedgerConflict):
			// A concurrent settle moved the leg first; adopt its state.
			refreshed, gerr := u.transactions.GetByID(ctx, payment.ID)
			if gerr != nil {
				return entities.PaymentTransaction{}, gerr
			}
			if refreshed.Status == entities.TransactionStatusSuccessful {
				return refreshed, nil
			}
			payment = refreshed
		case err != nil:
			return entities.PaymentTransaction{}, err
		default:
			payment = updated
		}
	}

	reference := payment.ID
	if strings.TrimSpace(paymentReference) != "" {
		reference = strings.TrimSpace(paymentReference)
	}

	capCtx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	defer cancel()
	log.Printf("[settlement][usecase] capture start contract_id=%s amount=%.2f reference=%s", contract.ID, payment.Amount, reference)
	gatewayTxnID, _, err := u.gateway.Capture(capCtx, payment.Amount, payment.Currency, contract.ClientID, reference)
	if err != nil {
		log.Printf("[settlement][usecase] capture failed contract_id=%s err=%v", contract.ID, err)
		if _, markErr := u.transactions.MarkStatus(ctx, payment.ID, entities.TransactionStatusFailed, ""); markErr != nil {
			if errors.Is(markErr, interfaces.ErrLedgerConflict) {
				// The leg moved on while this call waited on the gateway: a
				// concurrent settle captured it. Adopt the successful leg
				// instead of reporting a stale failure.
				refreshed, gerr := u.transactions.GetByID(ctx, payment.ID)
				if gerr == nil && refreshed.Status == entities.TransactionStatusSuccessful {
					log.Printf("[settlement][usecase] stale failure discarded, leg already captured payment_id=%s", payment.ID)
					return refreshed, nil
				}
			}
			log.Printf("[settlement][usecase] mark-failed write failed payment_id=%s err=%v", payment.ID, markErr)
		}
		return entities.PaymentTransaction{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	updated, err := u.transactions.MarkStatus(ctx, payment.ID, entities.TransactionStatusSuccessful, gatewayTxnID)
	if errors.Is(err, interfaces.ErrLedgerConflict) {
		refreshed, gerr := u.transactions.GetByID(ctx, payment.ID)
		if gerr != nil {
			return entities.PaymentTransaction{}, gerr
		}
		if refreshed.Status == entities.TransactionStatusSuccessful {
			return refreshed, nil
		}
		return entities.PaymentTransaction{}, fmt.Errorf("%w: payment leg %s is %s after capture", ErrInvalidState, payment.ID, refreshed.Status)
	}
	if err != nil {
		// The charge went through; the next settle run resumes via the
		// idempotent capture reference without charging again.
		log.Printf("[settlement][usecase] mark-successful write failed payment_id=%s gateway_txn_id=%s err=%v", payment.ID, gatewayTxnID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[settlement][usecase] capture success contract_id=%s gateway_txn_id=%s", contract.ID, gatewayTxnID)
	return updated, nil
}

// finalize writes the fee and payout legs and completes project and contract
// in a single ledger transaction.
func (u *SettlementUseCase) finalize(ctx context.Context, project entities.Project, contract entities.Contract, payment entities.PaymentTransaction) (SettlementResult, error) {
	fee := u.policy.Fee(contract.AgreedAmount)
	payout := roundCents(contract.AgreedAmount - fee)
	now := time.Now().UTC()

	feeLeg := entities.PaymentTransaction{
		ID:         entities.FeeLegID(contract.ID),
		ProjectID:  project.ID,
		ContractID: contract.ID,
		PayerID:    entities.AccountPlatformEscrow,
		PayeeID:    entities.AccountPlatformFees,
		Amount:     fee,
		Currency:   payment.Currency,
		Type:       entities.TransactionTypePlatformFee,
		Status:     entities.TransactionStatusSuccessful,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	payoutLeg := entities.PaymentTransaction{
		ID:         entities.PayoutLegID(contract.ID),
		ProjectID:  project.ID,
		ContractID: contract.ID,
		PayerID:    entities.AccountPlatformEscrow,
		PayeeID:    contract.FreelancerID,
		Amount:     payout,
		Currency:   payment.Currency,
		Type:       entities.TransactionTypeWithdrawal,
		Status:     entities.TransactionStatusSuccessful,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := u.ledger.FinalizeSettlement(ctx, feeLeg, payoutLeg, project.ID, contract.ID)
	if errors.Is(err, interfaces.ErrLedgerConflict) {
		// Someone else finalized between our reads and this write.
		log.Printf("[settlement][usecase] finalize lost the race, replaying prior result project_id=%s contract_id=%s", project.ID, contract.ID)
		refreshed, gerr := u.projects.GetByID(ctx, project.ID)
		if gerr != nil {
			return SettlementResult{}, gerr
		}
		return u.priorResult(ctx, refreshed, contract)
	}
	if err != nil {
		log.Printf("[settlement][usecase] finalize failed project_id=%s contract_id=%s err=%v", project.ID, contract.ID, err)
		return SettlementResult{}, err
	}

	log.Printf("[settlement][usecase] settle success project_id=%s contract_id=%s captured=%.2f fee=%.2f payout=%.2f",
		project.ID, contract.ID, payment.Amount, fee, payout)
	emit(ctx, u.notifier, entities.Event{
		Type:        entities.EventProjectCompleted,
		ProjectID:   project.ID,
		ActorID:     contract.ClientID,
		RecipientID: contract.FreelancerID,
		Data:        map[string]string{"contract_id": contract.ID},
	})
	// Prompt the client for a review exactly once, on completion.
	emit(ctx, u.notifier, entities.Event{
		Type:        entities.EventReviewPromptRequested,
		ProjectID:   project.ID,
		RecipientID: contract.ClientID,
		Data:        map[string]string{"contract_id": contract.ID},
	})

	return SettlementResult{
		ProjectID:          project.ID,
		ContractID:         contract.ID,
		PaymentTransaction: payment,
		FeeTransaction:     feeLeg,
		PayoutTransaction:  payoutLeg,
		AmountCaptured:     payment.Amount,
		Fee:                fee,
		Payout:             payout,
	}, nil
}

// ListProjectTransactions returns the ledger legs recorded for a project,
// oldest first. Visible to the project parties and admins only.
func (u *SettlementUseCase) ListProjectTransactions(ctx context.Context, projectID string, actor Actor) ([]entities.PaymentTransaction, error) {
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
	if project.ClientID != actor.ID && project.FreelancerID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: payment history is only visible to project parties", ErrUnauthorized)
	}

	legs, err := u.transactions.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// The project id index returns legs in no particular order.
	sort.Slice(legs, func(i, j int) bool {
		if legs[i].CreatedAt.Equal(legs[j].CreatedAt) {
			return legs[i].ID < legs[j].ID
		}
		return legs[i].CreatedAt.Before(legs[j].CreatedAt)
	})
	return legs, nil
}

// priorResult reconstructs the settlement outcome from the recorded legs for
// an idempotent replay.
func (u *SettlementUseCase) priorResult(ctx context.Context, project entities.Project, contract entities.Contract) (SettlementResult, error) {
	if contract.ID == "" {
		return SettlementResult{}, fmt.Errorf("%w: completed project %s has no contract", ErrInvariantViolation, project.ID)
	}

	payment, err := u.transactions.GetByID(ctx, entities.PaymentLegID(contract.ID))
	if err != nil {
		return SettlementResult{}, err
	}
	feeLeg, err := u.transactions.GetByID(ctx, entities.FeeLegID(contract.ID))
	if err != nil {
		return SettlementResult{}, err
	}
	payoutLeg, err := u.transactions.GetByID(ctx, entities.PayoutLegID(contract.ID))
	if err != nil {
		return SettlementResult{}, err
	}
	if payment.ID == "" || feeLeg.ID == "" || payoutLeg.ID == "" {
		return SettlementResult{}, fmt.Errorf("%w: completed project %s is missing settlement legs", ErrInvariantViolation, project.ID)
	}

	log.Printf("[settlement][usecase] already settled project_id=%s contract_id=%s", project.ID, contract.ID)
	return SettlementResult{
		ProjectID:          project.ID,
		ContractID:         contract.ID,
		PaymentTransaction: payment,
		FeeTransaction:     feeLeg,
		PayoutTransaction:  payoutLeg,
		AmountCaptured:     payment.Amount,
		Fee:                feeLeg.Amount,
		Payout:             payoutLeg.Amount,
		AlreadySettled:     true,
	}, nil
}
