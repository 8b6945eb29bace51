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

// IWorkReviewUseCase manages the submission/approval/revision loop between
// the assigned freelancer and the client.

type IWorkReviewUseCase interface {
	SubmitWork(ctx context.Context, projectID string, actor Actor, files []entities.SubmissionFile, notes string) (entities.WorkSubmission, error)
	RequestRevision(ctx context.Context, projectID string, actor Actor, feedback string) (entities.Project, error)
	ApproveWork(ctx context.Context, projectID string, actor Actor, submissionID string) (entities.Project, error)
	ListSubmissions(ctx context.Context, projectID string, actor Actor) ([]entities.WorkSubmission, error)
}

type WorkReviewUseCase struct {
	submissions interfaces.ISubmissionRepository
	projects    interfaces.IProjectRepository
	ledger      interfaces.ILedgerStore
	notifier    interfaces.INotificationDispatcher
}

var _ IWorkReviewUseCase = (*WorkReviewUseCase)(nil)

func NewWorkReviewUseCase(submissions interfaces.ISubmissionRepository, projects interfaces.IProjectRepository, ledger interfaces.ILedgerStore, notifier interfaces.INotificationDispatcher) *WorkReviewUseCase {
	return &WorkReviewUseCase{submissions: submissions, projects: projects, ledger: ledger, notifier: notifier}
}

// SubmitWork appends the next submission version and flips the project to
// awaiting_review. Versions are assigned max+1 and written conditionally, so
// concurrent submits cannot produce gaps or duplicates; the loser of a
// version race retries once against the fresh maximum.
func (u *WorkReviewUseCase) SubmitWork(ctx context.Context, projectID string, actor Actor, files []entities.SubmissionFile, notes string) (entities.WorkSubmission, error) {
	projectID = strings.TrimSpace(projectID)
	log.Printf("[review][usecase] submit-work start project_id=%s freelancer_id=%s", projectID, actor.ID)
	if projectID == "" {
		return entities.WorkSubmission{}, fmt.Errorf("%w: empty project id", ErrInvalidInput)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.WorkSubmission{}, err
	}
	if project.ID == "" {
		return entities.WorkSubmission{}, ErrProjectNotFound
	}
	if project.FreelancerID != actor.ID {
		return entities.WorkSubmission{}, fmt.Errorf("%w: only the assigned freelancer submits work", ErrUnauthorized)
	}
	if project.Status != entities.ProjectStatusInProgress && project.Status != entities.ProjectStatusAwaitingReview {
		return entities.WorkSubmission{}, fmt.Errorf("%w: project %s is %s, submissions need an in-progress project", ErrInvalidState, projectID, project.Status)
	}

	for attempt := 0; attempt < 2; attempt++ {
		latest, err := u.submissions.GetLatestByProjectID(ctx, projectID)
		if err != nil {
			return entities.WorkSubmission{}, err
		}

		sub := entities.WorkSubmission{
			ID:           uuid.NewString(),
			ProjectID:    projectID,
			FreelancerID: actor.ID,
			Version:      latest.Version + 1,
			Files:        files,
			Notes:        strings.TrimSpace(notes),
			SubmittedAt:  time.Now().UTC(),
		}
		err = u.ledger.RecordSubmission(ctx, sub)
		if errors.Is(err, interfaces.ErrLedgerConflict) && attempt == 0 {
			// Another submission claimed this version; re-read and try once more.
			continue
		}
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.WorkSubmission{}, fmt.Errorf("%w: project %s changed state during submission", ErrInvalidState, projectID)
		}
		if err != nil {
			log.Printf("[review][usecase] submit-work ledger write failed project_id=%s err=%v", projectID, err)
			return entities.WorkSubmission{}, err
		}

		log.Printf("[review][usecase] submit-work success project_id=%s submission_id=%s version=%d", projectID, sub.ID, sub.Version)
		emit(ctx, u.notifier, entities.Event{
			Type:        entities.EventWorkSubmitted,
			ProjectID:   projectID,
			ActorID:     actor.ID,
			RecipientID: project.ClientID,
			Data:        map[string]string{"submission_id": sub.ID, "version": fmt.Sprintf("%d", sub.Version)},
		})
		return sub, nil
	}
	return entities.WorkSubmission{}, fmt.Errorf("%w: could not assign submission version", ErrInvalidState)
}

// RequestRevision moves the project back to in_progress. Existing submission
// records are immutable history and stay untouched.
func (u *WorkReviewUseCase) RequestRevision(ctx context.Context, projectID string, actor Actor, feedback string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	log.Printf("[review][usecase] request-revision start project_id=%s client_id=%s", projectID, actor.ID)
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
	if project.ClientID != actor.ID && !actor.IsAdmin() {
		return entities.Project{}, fmt.Errorf("%w: only the project owner requests revisions", ErrUnauthorized)
	}
	if project.Status != entities.ProjectStatusAwaitingReview {
		return entities.Project{}, fmt.Errorf("%w: project %s is %s, revisions need awaiting_review", ErrInvalidState, projectID, project.Status)
	}

	updated, err := u.projects.RequestRevision(ctx, projectID)
	if err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.Project{}, fmt.Errorf("%w: project %s left awaiting_review", ErrInvalidState, projectID)
		}
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	log.Printf("[review][usecase] request-revision success project_id=%s", projectID)
	emit(ctx, u.notifier, entities.Event{
		Type:        entities.EventRevisionRequested,
		ProjectID:   projectID,
		ActorID:     actor.ID,
		RecipientID: project.FreelancerID,
		Data:        map[string]string{"feedback": strings.TrimSpace(feedback)},
	})
	return updated, nil
}

// ApproveWork marks the latest submission as approved. The project stays in
// awaiting_review until settlement confirms the money moved.
func (u *WorkReviewUseCase) ApproveWork(ctx context.Context, projectID string, actor Actor, submissionID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	submissionID = strings.TrimSpace(submissionID)
	log.Printf("[review][usecase] approve start project_id=%s submission_id=%s client_id=%s", projectID, submissionID, actor.ID)
	if projectID == "" || submissionID == "" {
		return entities.Project{}, fmt.Errorf("%w: project id and submission id are required", ErrInvalidInput)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if project.ClientID != actor.ID && !actor.IsAdmin() {
		return entities.Project{}, fmt.Errorf("%w: only the project owner approves work", ErrUnauthorized)
	}
	if project.Status != entities.ProjectStatusAwaitingReview {
		return entities.Project{}, fmt.Errorf("%w: project %s is %s, approval needs awaiting_review", ErrInvalidState, projectID, project.Status)
	}

	sub, err := u.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return entities.Project{}, err
	}
	if sub.ID == "" || sub.ProjectID != projectID {
		return entities.Project{}, ErrSubmissionNotFound
	}
	latest, err := u.submissions.GetLatestByProjectID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if latest.ID != sub.ID {
		return entities.Project{}, fmt.Errorf("%w: submission %s (v%d) is not the latest version (v%d)", ErrInvalidState, submissionID, sub.Version, latest.Version)
	}

	updated, err := u.projects.SetApprovedSubmission(ctx, projectID, submissionID)
	if err != nil {
		if errors.Is(err, interfaces.ErrLedgerConflict) {
			return entities.Project{}, fmt.Errorf("%w: project %s left awaiting_review", ErrInvalidState, projectID)
		}
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	log.Printf("[review][usecase] approve success project_id=%s submission_id=%s version=%d", projectID, submissionID, sub.Version)
	emit(ctx, u.notifier, entities.Event{
		Type:        entities.EventWorkApproved,
		ProjectID:   projectID,
		ActorID:     actor.ID,
		RecipientID: project.FreelancerID,
		Data:        map[string]string{"submission_id": submissionID},
	})
	return updated, nil
}

func (u *WorkReviewUseCase) ListSubmissions(ctx context.Context, projectID string, actor Actor) ([]entities.WorkSubmission, error) {
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
		return nil, fmt.Errorf("%w: submissions are only visible to project parties", ErrUnauthorized)
	}
	return u.submissions.ListByProjectID(ctx, projectID)
}
