package routes

import (
	"freelance_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathBids      = "/bids"
	PathContracts = "/contracts"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	bidHandler *handlers.BidHandler,
	contractHandler *handlers.ContractHandler,
	workReviewHandler *handlers.WorkReviewHandler,
	settlementHandler *handlers.SettlementHandler,
	adminHandler *handlers.AdminHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListOpenProjects)
		projects.GET("/:project_id", projectHandler.GetProject)

		projects.POST("/:project_id/bids", bidHandler.SubmitBid)
		projects.GET("/:project_id/bids", bidHandler.ListBidsByProject)
		projects.POST("/:project_id/bids/:bid_id/accept", contractHandler.AcceptBid)

		projects.POST("/:project_id/submissions", workReviewHandler.SubmitWork)
		projects.GET("/:project_id/submissions", workReviewHandler.ListSubmissions)
		projects.PATCH("/:project_id/revision", workReviewHandler.RequestRevision)
		projects.PATCH("/:project_id/approve", workReviewHandler.ApproveWork)

		projects.POST("/:project_id/settle", settlementHandler.Settle)
		projects.GET("/:project_id/transactions", settlementHandler.ListTransactions)

		projects.PATCH("/:project_id/dispute", adminHandler.ForceDispute)
		projects.PATCH("/:project_id/cancel", adminHandler.CancelProject)
	}

	bids := rg.Group(PathBids)
	{
		bids.GET("/:bid_id", bidHandler.GetBid)
		bids.PATCH("/:bid_id/withdraw", bidHandler.WithdrawBid)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:contract_id", contractHandler.GetContract)
	}
}
