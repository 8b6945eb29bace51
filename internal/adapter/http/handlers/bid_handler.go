package handlers

import (
	"net/http"

	request "freelance_marketplace/internal/adapter/http/dto/request"
	response "freelance_marketplace/internal/adapter/http/dto/response"
	"freelance_marketplace/internal/usecase"
	"freelance_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)

// BidHandler handles HTTP requests for bidding on open projects.

type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.BidSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.SubmitBid(c.Request.Context(), c.Param("project_id"), actor, payload.Amount, payload.Proposal, payload.EstimatedCompletionTime)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

func (h *BidHandler) WithdrawBid(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	bid, err := h.usecase.WithdrawBid(c.Request.Context(), c.Param("bid_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) ListBidsByProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	bids, err := h.usecase.ListBidsByProject(c.Request.Context(), c.Param("project_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBids(bids))
}

func (h *BidHandler) GetBid(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	bid, err := h.usecase.GetBid(c.Request.Context(), c.Param("bid_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}
