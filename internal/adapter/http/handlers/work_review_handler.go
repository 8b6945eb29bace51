package handlers

import (
	"net/http"

	request "freelance_marketplace/internal/adapter/http/dto/request"
	response "freelance_marketplace/internal/adapter/http/dto/response"
	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase"
	"freelance_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)

// WorkReviewHandler handles HTTP requests for the submit/review/approve cycle.

type WorkReviewHandler struct {
	usecase usecase.IWorkReviewUseCase
}

func NewWorkReviewHandler(uc usecase.IWorkReviewUseCase) *WorkReviewHandler {
	return &WorkReviewHandler{usecase: uc}
}

func (h *WorkReviewHandler) SubmitWork(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.WorkSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	files := make([]entities.SubmissionFile, 0, len(payload.Files))
	for _, f := range payload.Files {
		files = append(files, entities.SubmissionFile{Filename: f.Filename, URL: f.URL, Size: f.Size})
	}

	submission, err := h.usecase.SubmitWork(c.Request.Context(), c.Param("project_id"), actor, files, payload.Notes)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkSubmission(submission))
}

func (h *WorkReviewHandler) RequestRevision(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.RevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.RequestRevision(c.Request.Context(), c.Param("project_id"), actor, payload.Feedback)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *WorkReviewHandler) ApproveWork(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.ApproveWorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.ApproveWork(c.Request.Context(), c.Param("project_id"), actor, payload.SubmissionID)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *WorkReviewHandler) ListSubmissions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	submissions, err := h.usecase.ListSubmissions(c.Request.Context(), c.Param("project_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkSubmissions(submissions))
}
