package http

import (
	"errors"
	"net/http"

	"burgershop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps application errors to HTTP status codes.
// Validation failures are client errors, missing aggregates are 404,
// lifecycle violations are 409, anything unclassified is a 500.
func statusFromError(err error) int {
	switch {
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

// errorResponse writes the JSON error body for err. Internal errors are
// not echoed back to the client.
func errorResponse(ctx echo.Context, err error) error {
	code := statusFromError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
