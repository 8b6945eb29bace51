package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"
	mock_interfaces "freelance_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	projects     *mock_interfaces.MockIProjectRepository
	contracts    *mock_interfaces.MockIContractRepository
	transactions *mock_interfaces.MockITransactionRepository
	ledger       *mock_interfaces.MockILedgerStore
	notifier     *mock_interfaces.MockINotificationDispatcher
}

func newAdminUseCaseForTest(ctrl *gomock.Controller) (*AdminUseCase, adminMocks) {
	m := adminMocks{
		projects:     mock_interfaces.NewMockIProjectRepository(ctrl),
		contracts:    mock_interfaces.NewMockIContractRepository(ctrl),
		transactions: mock_interfaces.NewMockITransactionRepository(ctrl),
		ledger:       mock_interfaces.NewMockILedgerStore(ctrl),
		notifier:     mock_interfaces.NewMockINotificationDispatcher(ctrl),
	}
	uc := NewAdminUseCase(m.projects, m.contracts, m.transactions, m.ledger, m.notifier)
	return uc, m
}

func TestAdminUseCase_ForceDispute(t *testing.T) {
	admin := Actor{ID: "adm-1", Role: RoleAdmin}

	t.Run("requires admin role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAdminUseCaseForTest(ctrl)

		_, err := uc.ForceDispute(context.Background(), "p-1", Actor{ID: "c-1", Role: RoleClient}, "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("rejects terminal project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", Status: entities.ProjectStatusCancelled}, nil)

		_, err := uc.ForceDispute(context.Background(), "p-1", admin, "fraud report")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("disputes project and active contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusInProgress}, nil)
		m.contracts.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(
			entities.Contract{ID: "ct-1", ProjectID: "p-1", Status: entities.ContractStatusActive}, nil)
		m.ledger.EXPECT().Terminate(gomock.Any(), "p-1", entities.ProjectStatusDisputed, "ct-1", entities.ContractStatusDisputed, gomock.Nil()).Return(nil)
		m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		project, err := uc.ForceDispute(context.Background(), "p-1", admin, "fraud report")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.Status != entities.ProjectStatusDisputed {
			t.Fatalf("expected disputed project, got %s", project.Status)
		}
	})

	t.Run("open project without a contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusOpen}, nil)
		m.contracts.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Contract{}, nil)
		m.ledger.EXPECT().Terminate(gomock.Any(), "p-1", entities.ProjectStatusDisputed, "", entities.ContractStatusDisputed, gomock.Nil()).Return(nil)
		m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		if _, err := uc.ForceDispute(context.Background(), "p-1", admin, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("losing the race to a terminal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusInProgress}, nil)
		m.contracts.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Contract{}, nil)
		m.ledger.EXPECT().Terminate(gomock.Any(), "p-1", entities.ProjectStatusDisputed, "", entities.ContractStatusDisputed, gomock.Nil()).Return(interfaces.ErrLedgerConflict)

		_, err := uc.ForceDispute(context.Background(), "p-1", admin, "")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestAdminUseCase_CancelProject(t *testing.T) {
	admin := Actor{ID: "adm-1", Role: RoleAdmin}
	owner := Actor{ID: "c-1", Role: RoleClient}

	t.Run("owner cancels while open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusOpen}, nil)
		m.contracts.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Contract{}, nil)
		m.ledger.EXPECT().Terminate(gomock.Any(), "p-1", entities.ProjectStatusCancelled, "", entities.ContractStatusTerminated, gomock.Nil()).Return(nil)
		m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		project, err := uc.CancelProject(context.Background(), "p-1", owner, "scope changed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.Status != entities.ProjectStatusCancelled {
			t.Fatalf("expected cancelled project, got %s", project.Status)
		}
	})

	t.Run("owner cannot cancel once work started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusInProgress}, nil)

		_, err := uc.CancelProject(context.Background(), "p-1", owner, "")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("non-owner cannot cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusOpen}, nil)

		_, err := uc.CancelProject(context.Background(), "p-1", Actor{ID: "c-2", Role: RoleClient}, "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("admin cancel refunds an unsettled capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", FreelancerID: "f-1", Status: entities.ProjectStatusAwaitingReview}, nil)
		m.contracts.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(
			entities.Contract{ID: "ct-1", ProjectID: "p-1", ClientID: "c-1", FreelancerID: "f-1", AgreedAmount: 300, Status: entities.ContractStatusActive}, nil)
		m.transactions.EXPECT().GetByID(gomock.Any(), "ct-1-payment").Return(
			entities.PaymentTransaction{ID: "ct-1-payment", ProjectID: "p-1", ContractID: "ct-1", Amount: 300, Currency: entities.DefaultCurrency, Status: entities.TransactionStatusSuccessful}, nil)
		m.ledger.EXPECT().Terminate(gomock.Any(), "p-1", entities.ProjectStatusCancelled, "ct-1", entities.ContractStatusTerminated, gomock.AssignableToTypeOf(&entities.PaymentTransaction{})).DoAndReturn(
			func(_ context.Context, _ string, _ entities.ProjectStatus, _ string, _ entities.ContractStatus, refund *entities.PaymentTransaction) error {
				if refund == nil {
					t.Fatalf("expected a refund leg")
				}
				if refund.ID != entities.RefundLegID("p-1") || refund.Amount != 300 {
					t.Fatalf("unexpected refund leg: %+v", refund)
				}
				if refund.PayerID != entities.AccountPlatformEscrow || refund.PayeeID != "c-1" {
					t.Fatalf("refund must move escrow money back to the client: %+v", refund)
				}
				return nil
			},
		)
		m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		project, err := uc.CancelProject(context.Background(), "p-1", admin, "unresponsive freelancer")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.Status != entities.ProjectStatusCancelled {
			t.Fatalf("unexpected status: %s", project.Status)
		}
		if project.FreelancerID != "" {
			t.Fatalf("cancelled project must not keep an assigned freelancer, got %q", project.FreelancerID)
		}
	})

	t.Run("admin cancel without a captured payment skips the refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAdminUseCaseForTest(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(
			entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusInProgress}, nil)
		m.contracts.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(
			entities.Contract{ID: "ct-1", ProjectID: "p-1", ClientID: "c-1", Status: entities.ContractStatusActive}, nil)
		m.transactions.EXPECT().GetByID(gomock.Any(), "ct-1-payment").Return(entities.PaymentTransaction{}, nil)
		m.ledger.EXPECT().Terminate(gomock.Any(), "p-1", entities.ProjectStatusCancelled, "ct-1", entities.ContractStatusTerminated, gomock.Nil()).Return(nil)
		m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		if _, err := uc.CancelProject(context.Background(), "p-1", admin, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
