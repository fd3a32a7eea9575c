package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"repair-auctions/internal/auctionerrors"
	"repair-auctions/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "caller is not the auction poster"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusBadRequest, "bid not found in auction"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction not active"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusConflict, "bidding window has closed"
	case errors.Is(err, auctionerrors.ErrDuplicateBid):
		return http.StatusConflict, "already bid on this auction"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusConflict, "cannot bid on own auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
