package handlers

import (
	"errors"
	"net/http"

	"freelance_marketplace/internal/usecase"
	"freelance_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

// Caller identity arrives on trusted headers set by the edge proxy after
// authentication. The service itself never validates credentials.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Missing or invalid actor headers", http.StatusUnauthorized)

func actorFrom(c *gin.Context) (usecase.Actor, bool) {
	actor := usecase.Actor{
		ID:   c.GetHeader(HeaderActorID),
		Role: c.GetHeader(HeaderActorRole),
	}
	if !actor.Valid() {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return usecase.Actor{}, false
	}
	return actor, true
}

// mapMarketplaceError translates use case sentinels shared by every handler.
func mapMarketplaceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateBid):
		return pkg.NewDomainErrorSimple("DUPLICATE_BID", "Freelancer already has an active bid on this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable, retry later", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvariantViolation):
		return pkg.NewDomainError("LEDGER_INCONSISTENT", "Ledger state is inconsistent, manual intervention required", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
