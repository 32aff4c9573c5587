package http

import (
	"errors"
	"net/http"

	"foodshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps application errors onto HTTP status codes. Validation
// failures are client errors; anything unrecognized is a server fault.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrActionForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

// writeUnauthenticated reports a request that reached a handler without an
// authenticated actor in its context.
func writeUnauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Missing authentication",
	})
}

// writeRequestError reports a failure to build a command or query from the
// request. Errors without a recognized category are still the client's: the
// input never reached the application layer.
func writeRequestError(c echo.Context, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		status = http.StatusBadRequest
	}
	return c.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
