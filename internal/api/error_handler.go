package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitlogapp/fitlog-api/internal/api/metrics"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		switch code {
		case http.StatusUnauthorized:
			metrics.AccessDenialsTotal.WithLabelValues("unauthenticated").Inc()
		case http.StatusForbidden:
			metrics.AccessDenialsTotal.WithLabelValues("forbidden").Inc()
		case http.StatusGone:
			metrics.AccessDenialsTotal.WithLabelValues("gone").Inc()
		}

		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Missing
	// credential is always 401; 403 is reserved for an authenticated
	// principal failing a role/ownership/visibility check.
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.ErrInvalidToken.Error()
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusUnauthorized, domain.ErrMissingCredential.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, domain.ErrTooManyAttempts.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrExerciseNotFound):
		return http.StatusNotFound, domain.ErrExerciseNotFound.Error()
	case errors.Is(err, domain.ErrExerciseGone):
		return http.StatusGone, domain.ErrExerciseGone.Error()
	case errors.Is(err, domain.ErrExerciseNameTaken):
		return http.StatusConflict, domain.ErrExerciseNameTaken.Error()
	case errors.Is(err, domain.ErrWorkoutNotFound):
		return http.StatusNotFound, domain.ErrWorkoutNotFound.Error()
	case errors.Is(err, domain.ErrWorkoutExerciseNotFound):
		return http.StatusNotFound, domain.ErrWorkoutExerciseNotFound.Error()
	case errors.Is(err, domain.ErrInvalidWorkoutDate):
		return http.StatusBadRequest, domain.ErrInvalidWorkoutDate.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
