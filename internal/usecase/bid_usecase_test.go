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

func TestBidUseCase_SubmitBid(t *testing.T) {
	freelancer := Actor{ID: "f-1", Role: RoleFreelancer}

	t.Run("empty project id", func(t *testing.T) {
		uc := NewBidUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitBid(context.Background(), "  ", freelancer, 100, "", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("client role rejected", func(t *testing.T) {
		uc := NewBidUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitBid(context.Background(), "p-1", Actor{ID: "c-1", Role: RoleClient}, 100, "", "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewBidUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitBid(context.Background(), "p-1", freelancer, 0, "", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("project not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewBidUseCase(nil, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusInProgress}, nil)

		_, err := uc.SubmitBid(context.Background(), "p-1", freelancer, 100, "", "")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("duplicate active bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewBidUseCase(bids, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusOpen}, nil)
		bids.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Bid{
			{ID: "b-old", ProjectID: "p-1", FreelancerID: "f-1", Status: entities.BidStatusSubmitted},
		}, nil)

		_, err := uc.SubmitBid(context.Background(), "p-1", freelancer, 100, "", "")
		if !errors.Is(err, ErrDuplicateBid) {
			t.Fatalf("expected ErrDuplicateBid, got %v", err)
		}
	})

	t.Run("withdrawn bid does not block rebidding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBidUseCase(bids, projects, ledger, notifier)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusOpen}, nil)
		bids.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Bid{
			{ID: "b-old", ProjectID: "p-1", FreelancerID: "f-1", Status: entities.BidStatusWithdrawn},
		}, nil)
		ledger.EXPECT().SubmitBid(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) error {
				if b.ID == "" || b.FreelancerID != "f-1" || b.Status != entities.BidStatusSubmitted {
					t.Fatalf("unexpected bid: %+v", b)
				}
				return nil
			},
		)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		bid, err := uc.SubmitBid(context.Background(), "p-1", freelancer, 250, " proposal ", "2 weeks")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bid.Amount != 250 || bid.Proposal != "proposal" {
			t.Fatalf("unexpected bid: %+v", bid)
		}
	})

	t.Run("ledger conflict maps to invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewBidUseCase(bids, projects, ledger, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusOpen}, nil)
		bids.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return(nil, nil)
		ledger.EXPECT().SubmitBid(gomock.Any(), gomock.Any()).Return(interfaces.ErrLedgerConflict)

		_, err := uc.SubmitBid(context.Background(), "p-1", freelancer, 100, "", "")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestBidUseCase_WithdrawBid(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewBidUseCase(bids, nil, nil, nil)

		bids.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Bid{ID: "b-1", FreelancerID: "f-2", Status: entities.BidStatusSubmitted}, nil)

		_, err := uc.WithdrawBid(context.Background(), "b-1", Actor{ID: "f-1", Role: RoleFreelancer})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewBidUseCase(bids, nil, nil, nil)

		bids.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Bid{ID: "b-1", FreelancerID: "f-1", Status: entities.BidStatusAccepted}, nil)

		_, err := uc.WithdrawBid(context.Background(), "b-1", Actor{ID: "f-1", Role: RoleFreelancer})
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBidUseCase(bids, projects, ledger, notifier)

		bids.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Bid{ID: "b-1", ProjectID: "p-1", FreelancerID: "f-1", Status: entities.BidStatusSubmitted}, nil)
		ledger.EXPECT().WithdrawBid(gomock.Any(), "b-1", "p-1").Return(nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1"}, nil)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		bid, err := uc.WithdrawBid(context.Background(), "b-1", Actor{ID: "f-1", Role: RoleFreelancer})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bid.Status != entities.BidStatusWithdrawn {
			t.Fatalf("expected withdrawn status, got %s", bid.Status)
		}
	})
}

func TestBidUseCase_Visibility(t *testing.T) {
	t.Run("list requires project owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewBidUseCase(nil, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1"}, nil)

		_, err := uc.ListBidsByProject(context.Background(), "p-1", Actor{ID: "f-1", Role: RoleFreelancer})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("admin lists any project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewBidUseCase(bids, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1"}, nil)
		bids.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Bid{{ID: "b-1"}}, nil)

		res, err := uc.ListBidsByProject(context.Background(), "p-1", Actor{ID: "a-1", Role: RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 bid, got %d", len(res))
		}
	})

	t.Run("get bid hidden from third parties", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewBidUseCase(bids, projects, nil, nil)

		bids.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Bid{ID: "b-1", ProjectID: "p-1", FreelancerID: "f-1"}, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1"}, nil)

		_, err := uc.GetBid(context.Background(), "b-1", Actor{ID: "f-9", Role: RoleFreelancer})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
