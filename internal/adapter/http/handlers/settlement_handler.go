package handlers

import (
	"net/http"

	request "freelance_marketplace/internal/adapter/http/dto/request"
	response "freelance_marketplace/internal/adapter/http/dto/response"
	"freelance_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles the escrow settlement endpoint.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// Settle captures the client payment and releases fee and payout legs. Safe
// to retry: a settled project replays the recorded result with
// already_settled set.
func (h *SettlementHandler) Settle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	// Body is optional; an empty payment_reference falls back to the
	// deterministic payment leg id.
	var payload request.SettleRequest
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		appErr := mapMarketplaceError(usecase.ErrInvalidInput)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Settle(c.Request.Context(), c.Param("project_id"), actor, payload.PaymentReference)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if result.AlreadySettled {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSettlementResult(result))
}

// ListTransactions returns the payment history of a project: the captured
// payment plus any fee, payout and refund legs.
func (h *SettlementHandler) ListTransactions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	legs, err := h.usecase.ListProjectTransactions(c.Request.Context(), c.Param("project_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentTransactions(legs))
}
