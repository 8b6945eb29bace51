package handlers

import (
	"net/http"

	response "freelance_marketplace/internal/adapter/http/dto/response"
	"freelance_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for bid acceptance and contracts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// AcceptBid hires the bidding freelancer. One accept wins: concurrent accepts
// on the same project resolve to a single contract.
func (h *ContractHandler) AcceptBid(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	contract, err := h.usecase.AcceptBid(c.Request.Context(), c.Param("project_id"), c.Param("bid_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	contract, err := h.usecase.GetContract(c.Request.Context(), c.Param("contract_id"), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	contracts, err := h.usecase.ListContractsByActor(c.Request.Context(), actor)
	if err != nil {
		appErr := mapMarketplaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}
