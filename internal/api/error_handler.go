package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor lists the domain errors with a fixed HTTP status. Validation
// errors carry their own message; the rest use the sentinel text.
var statusFor = []struct {
	err    error
	code   int
	detail bool
}{
	{domain.ErrUserNotFound, http.StatusNotFound, false},
	{domain.ErrProjectNotFound, http.StatusNotFound, false},
	{domain.ErrEntryNotFound, http.StatusNotFound, false},
	{domain.ErrDocumentNotFound, http.StatusNotFound, false},
	{domain.ErrForbidden, http.StatusForbidden, false},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, false},
	{domain.ErrTokenRevoked, http.StatusUnauthorized, false},
	{domain.ErrUserExists, http.StatusConflict, false},
	{domain.ErrBootstrapAdmin, http.StatusConflict, false},
	{domain.ErrAdminAccount, http.StatusConflict, false},
	{domain.ErrInvalidFilter, http.StatusBadRequest, true},
	{domain.ErrInvalidFormat, http.StatusBadRequest, true},
	{domain.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, false},
	{domain.ErrInvalidName, http.StatusUnprocessableEntity, true},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity, true},
	{domain.ErrInvalidUnit, http.StatusUnprocessableEntity, true},
	{domain.ErrInvalidDate, http.StatusUnprocessableEntity, true},
	{domain.ErrNoteTooLong, http.StatusUnprocessableEntity, true},
	{domain.ErrInvalidPassword, http.StatusUnprocessableEntity, true},
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
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
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

	for _, m := range statusFor {
		if errors.Is(err, m.err) {
			if m.detail {
				return m.code, err.Error()
			}
			return m.code, m.err.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
