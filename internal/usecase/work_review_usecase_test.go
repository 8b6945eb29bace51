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

func TestWorkReviewUseCase_SubmitWork(t *testing.T) {
	freelancer := Actor{ID: "f-1", Role: RoleFreelancer}
	files := []entities.SubmissionFile{{Filename: "final.zip", URL: "s3://bucket/final.zip", Size: 1024}}

	t.Run("only assigned freelancer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewWorkReviewUseCase(nil, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", FreelancerID: "f-2", Status: entities.ProjectStatusInProgress}, nil)

		_, err := uc.SubmitWork(context.Background(), "p-1", freelancer, files, "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("first submission gets version 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewWorkReviewUseCase(submissions, projects, ledger, notifier)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", FreelancerID: "f-1", Status: entities.ProjectStatusInProgress}, nil)
		submissions.EXPECT().GetLatestByProjectID(gomock.Any(), "p-1").Return(entities.WorkSubmission{}, nil)
		ledger.EXPECT().RecordSubmission(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkSubmission{})).DoAndReturn(
			func(_ context.Context, s entities.WorkSubmission) error {
				if s.Version != 1 || s.FreelancerID != "f-1" {
					t.Fatalf("unexpected submission: %+v", s)
				}
				return nil
			},
		)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		sub, err := uc.SubmitWork(context.Background(), "p-1", freelancer, files, "done")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Version != 1 {
			t.Fatalf("expected version 1, got %d", sub.Version)
		}
	})

	t.Run("version race retries against fresh maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewWorkReviewUseCase(submissions, projects, ledger, notifier)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", FreelancerID: "f-1", Status: entities.ProjectStatusAwaitingReview}, nil)
		gomock.InOrder(
			submissions.EXPECT().GetLatestByProjectID(gomock.Any(), "p-1").Return(entities.WorkSubmission{ID: "s-1", Version: 1}, nil),
			ledger.EXPECT().RecordSubmission(gomock.Any(), gomock.Any()).Return(interfaces.ErrLedgerConflict),
			submissions.EXPECT().GetLatestByProjectID(gomock.Any(), "p-1").Return(entities.WorkSubmission{ID: "s-2", Version: 2}, nil),
			ledger.EXPECT().RecordSubmission(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkSubmission{})).DoAndReturn(
				func(_ context.Context, s entities.WorkSubmission) error {
					if s.Version != 3 {
						t.Fatalf("expected version 3 on retry, got %d", s.Version)
					}
					return nil
				},
			),
		)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		sub, err := uc.SubmitWork(context.Background(), "p-1", freelancer, files, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Version != 3 {
			t.Fatalf("expected version 3, got %d", sub.Version)
		}
	})
}

func TestWorkReviewUseCase_ReviewCycle(t *testing.T) {
	client := Actor{ID: "c-1", Role: RoleClient}

	t.Run("revision needs awaiting review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewWorkReviewUseCase(nil, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusInProgress}, nil)

		_, err := uc.RequestRevision(context.Background(), "p-1", client, "needs work")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("revision success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewWorkReviewUseCase(nil, projects, nil, notifier)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", FreelancerID: "f-1", Status: entities.ProjectStatusAwaitingReview}, nil)
		projects.EXPECT().RequestRevision(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusInProgress}, nil)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		project, err := uc.RequestRevision(context.Background(), "p-1", client, "fix the header")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.Status != entities.ProjectStatusInProgress {
			t.Fatalf("expected in_progress, got %s", project.Status)
		}
	})

	t.Run("approve rejects stale submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewWorkReviewUseCase(submissions, projects, nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", Status: entities.ProjectStatusAwaitingReview}, nil)
		submissions.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.WorkSubmission{ID: "s-1", ProjectID: "p-1", Version: 1}, nil)
		submissions.EXPECT().GetLatestByProjectID(gomock.Any(), "p-1").Return(entities.WorkSubmission{ID: "s-2", ProjectID: "p-1", Version: 2}, nil)

		_, err := uc.ApproveWork(context.Background(), "p-1", client, "s-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("approve marks latest submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewWorkReviewUseCase(submissions, projects, nil, notifier)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ClientID: "c-1", FreelancerID: "f-1", Status: entities.ProjectStatusAwaitingReview}, nil)
		submissions.EXPECT().GetByID(gomock.Any(), "s-2").Return(entities.WorkSubmission{ID: "s-2", ProjectID: "p-1", Version: 2}, nil)
		submissions.EXPECT().GetLatestByProjectID(gomock.Any(), "p-1").Return(entities.WorkSubmission{ID: "s-2", ProjectID: "p-1", Version: 2}, nil)
		projects.EXPECT().SetApprovedSubmission(gomock.Any(), "p-1", "s-2").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAwaitingReview, ApprovedSubmissionID: "s-2"}, nil)
		notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		project, err := uc.ApproveWork(context.Background(), "p-1", client, "s-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ApprovedSubmissionID != "s-2" {
			t.Fatalf("expected approval marker, got %+v", project)
		}
		if project.Status != entities.ProjectStatusAwaitingReview {
			t.Fatalf("approval must not complete the project, got %s", project.Status)
		}
	})
}
