package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance_marketplace/internal/domain/entities"
	mock_interfaces "freelance_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_CreateProject(t *testing.T) {
	t.Run("freelancer cannot post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		_, err := uc.CreateProject(context.Background(), Actor{ID: "f-1", Role: RoleFreelancer}, "Logo", "", 500, nil, nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		_, err := uc.CreateProject(context.Background(), Actor{ID: "c-1", Role: RoleClient}, "   ", "", 500, nil, nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		_, err := uc.CreateProject(context.Background(), Actor{ID: "c-1", Role: RoleClient}, "Logo", "", -1, nil, nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" {
					t.Fatalf("expected a generated project id")
				}
				if p.ClientID != "c-1" || p.Status != entities.ProjectStatusOpen {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.Title != "Logo" || p.Description != "A logo design" {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.CreateProject(context.Background(), Actor{ID: "c-1", Role: RoleClient}, " Logo ", " A logo design ", 500, nil, []string{"design"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.ProjectStatusOpen {
			t.Fatalf("expected open project, got %s", created.Status)
		}
	})
}

func TestProjectUseCase_GetProject(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		_, err := uc.GetProject(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Project{}, nil)

		_, err := uc.GetProject(context.Background(), "p-404")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusOpen}, nil)

		p, err := uc.GetProject(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-1" {
			t.Fatalf("unexpected project: %+v", p)
		}
	})
}
