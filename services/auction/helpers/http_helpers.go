package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"
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
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrInvalidUser):
		return http.StatusBadRequest, "invalid user details"
	case errors.Is(err, auctionerrors.ErrInvalidType):
		return http.StatusBadRequest, "unknown listing type"
	case errors.Is(err, auctionerrors.ErrInvalidAuctionID):
		return http.StatusNotFound, "this auction does not exist"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusGone, "this auction has expired or does not exist"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "this auction does not exist"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "you can not bid for your own item"
	case errors.Is(err, auctionerrors.ErrBelowStartingPrice):
		return http.StatusConflict, "bid is below the starting price"
	case errors.Is(err, auctionerrors.ErrUnderbid):
		return http.StatusConflict, "bid does not beat the current highest bid"
	case errors.Is(err, auctionerrors.ErrAboveMaximum):
		return http.StatusBadRequest, "bid exceeds the maximum allowed value"
	case errors.Is(err, auctionerrors.ErrDuplicateAuction):
		return http.StatusConflict, "this item is added already"
	case errors.Is(err, auctionerrors.ErrEmailTaken):
		return http.StatusBadRequest, "user already exists"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusBadRequest, "user does not exist"
	case errors.Is(err, auctionerrors.ErrWrongPassword):
		return http.StatusBadRequest, "password is wrong"
	case errors.Is(err, auctionerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// OutcomeLabel names a bid submission result for the outcome counter
func OutcomeLabel(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return "invalid_input"
	case errors.Is(err, auctionerrors.ErrInvalidAuctionID), errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return "not_found"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return "expired"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return "self_bid"
	case errors.Is(err, auctionerrors.ErrBelowStartingPrice):
		return "below_starting_price"
	case errors.Is(err, auctionerrors.ErrUnderbid):
		return "underbid"
	case errors.Is(err, auctionerrors.ErrAboveMaximum):
		return "above_maximum"
	default:
		return "error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
