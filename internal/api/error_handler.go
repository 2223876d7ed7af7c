package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all facade errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes remote-service rejections through with their server message.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrScopeDenied):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrSelfEdit):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrDecisionNotAllowed):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrOnLeaveLocked),
		errors.Is(err, domain.ErrManualOnLeave):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrDayNotInView):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRequestNotFound):
		return http.StatusNotFound, "leave request not found"
	case errors.Is(err, domain.ErrNoStagedDecision):
		return http.StatusConflict, err.Error()
	}

	// Remote-service rejections keep the server-provided message; anything
	// the upstream classified as a client error stays a client error here.
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) {
		if remoteErr.Validation() {
			return remoteErr.StatusCode, remoteErr.Message
		}
		return http.StatusBadGateway, remoteErr.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
