package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"name-market/internal/markerrors"
	"name-market/utils"

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
	case errors.Is(err, markerrors.ErrUnauthorized):
		return http.StatusForbidden, "missing required authorization"
	case errors.Is(err, markerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, markerrors.ErrLockNotFound):
		return http.StatusNotFound, "account is not locked"
	case errors.Is(err, markerrors.ErrOfferNotFound):
		return http.StatusNotFound, "no offer for name"
	case errors.Is(err, markerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "no auction for name"
	case errors.Is(err, markerrors.ErrNotForSale):
		return http.StatusNotFound, "name is not for sale"
	case errors.Is(err, markerrors.ErrLockExists):
		return http.StatusConflict, "account is already locked"
	case errors.Is(err, markerrors.ErrPreconditionFailed):
		return http.StatusConflict, "operation precondition failed"
	case errors.Is(err, markerrors.ErrBidTooLow):
		return http.StatusConflict, "bid below starting price"
	case errors.Is(err, markerrors.ErrInsufficientIncrement):
		return http.StatusConflict, "bid increment too small"
	case errors.Is(err, markerrors.ErrAlreadyHighestBidder):
		return http.StatusConflict, "already the highest bidder"
	case errors.Is(err, markerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, markerrors.ErrNotImplemented):
		return http.StatusNotImplemented, "operation not implemented"
	case errors.Is(err, markerrors.ErrExternalCall):
		return http.StatusBadGateway, "external service call failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
