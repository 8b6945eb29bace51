package handlers

import (
	"context"
	"net/http"

	request "freelance_marketplace/internal/adapter/http/dto/request"
	response "freelance_marketplace/internal/adapter/http/dto/response"
	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles cancellation and dispute overrides.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ForceDispute(c *gin.Context) {
	h.terminateByRequest(c, h.usecase.ForceDispute)
}

func (h *AdminHandler) CancelProject(c *gin.Context) {
	h.terminateByRequest(c, h.usecase.CancelProject)
}

func (h *AdminHandler) terminateByRequest(
	c *gin.Context,
	op func(ctx context.Context, projectID string, actor usecase.Actor, reason string) (entities.Project, error),
) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.TerminateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		appErr := mapMarketplaceError(usecase.ErrInvalidInput)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	project, err := op(c.Request.Context(), c.Param("project_id"), actor, payload.Reason)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}
