package handlers

import (
	"errors"
	"net/http"

	"hiko_buyforme/internal/usecase"
	"hiko_buyforme/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingFilter  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "One of user_id, status or hotdeal_id is required", http.StatusBadRequest)
)

// mapRequestError turns use case errors into the HTTP error body. Codes are
// stable so the UI can localise them.
func mapRequestError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var transitionErr *usecase.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", validationErr.Error(), err, http.StatusBadRequest).
			WithDetails(map[string]any{"field": validationErr.Field, "reason": validationErr.Reason})
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status change not allowed", err, http.StatusConflict).
			WithDetails(map[string]any{"from": string(transitionErr.From), "to": string(transitionErr.To)})
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainError("REQUEST_NOT_FOUND", "Buy-for-me request not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorage):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapRequestError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortInvalidPayload(c *gin.Context, err error) {
	appErr := errInvalidPayload
	if err != nil {
		appErr = errInvalidPayload.WithDetails(map[string]any{"error": err.Error()})
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
