package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// writeError maps application sentinels onto HTTP responses. Anything not
// classified surfaces as a 500 without leaking internals.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case apperrors.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case apperrors.IsValidationError(err), apperrors.IsBadRequestError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case apperrors.IsUnavailableError(err):
		status = http.StatusServiceUnavailable
		message = "dependency unavailable"
	case apperrors.IsDatabaseError(err):
		status = http.StatusInternalServerError
		message = "database error"
	}

	return c.JSON(status, errorBody{Error: message})
}
