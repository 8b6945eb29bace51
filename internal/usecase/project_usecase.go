package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IProjectUseCase exposes project posting and lookup. State transitions past
// 'open' belong to the contract, review, settlement and admin use cases.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, actor Actor, title, description string, budget float64, deadline *time.Time, tags []string) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListOpenProjects(ctx context.Context) ([]entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, actor Actor, title, description string, budget float64, deadline *time.Time, tags []string) (entities.Project, error) {
	if !actor.Valid() {
		return entities.Project{}, fmt.Errorf("%w: missing actor id", ErrUnauthorized)
	}
	if actor.Role != RoleClient && !actor.IsAdmin() {
		return entities.Project{}, fmt.Errorf("%w: only clients post projects", ErrUnauthorized)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Project{}, fmt.Errorf("%w: empty title", ErrInvalidInput)
	}
	if budget < 0 {
		return entities.Project{}, fmt.Errorf("%w: negative budget", ErrInvalidInput)
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:          uuid.NewString(),
		ClientID:    actor.ID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Budget:      budget,
		Deadline:    deadline,
		Tags:        tags,
		Status:      entities.ProjectStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[project][usecase] create failed client_id=%s err=%v", actor.ID, err)
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] create success project_id=%s client_id=%s", created.ID, created.ClientID)
	return created, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListOpenProjects(ctx context.Context) ([]entities.Project, error) {
	return u.repo.ListOpen(ctx)
}
