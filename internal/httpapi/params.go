package httpapi

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/validator"
)

// PaginationParams carries the skip/limit query parameters. Limits above
// the cap are rejected so callers learn the bound instead of silently
// receiving a clamped page.
type PaginationParams struct {
	Skip  int `query:"skip" json:"skip" validate:"gte=0"`
	Limit int `query:"limit" json:"limit" validate:"gte=1,lte=500"`
}

// parsePage binds and validates pagination query parameters, applying
// defaults for absent values.
func parsePage(c echo.Context) (storage.Page, error) {
	params := PaginationParams{Skip: 0, Limit: storage.DefaultLimit}
	if err := c.Bind(&params); err != nil {
		return storage.Page{}, fmt.Errorf("%w: invalid pagination parameters: %w", apperrors.ErrValidation, err)
	}
	if err := validator.Validate(params); err != nil {
		return storage.Page{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return storage.Page{Skip: params.Skip, Limit: params.Limit}, nil
}

// parseUUIDParam parses a required UUID path parameter.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: parameter '%s' must be a valid UUID: %w", apperrors.ErrValidation, name, err)
	}
	return id, nil
}

// parseOptionalUUIDQuery parses an optional UUID query parameter, returning
// nil when the parameter is absent.
func parseOptionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: query parameter '%s' must be a valid UUID: %w", apperrors.ErrValidation, name, err)
	}
	return &id, nil
}

// parseEnumQuery parses an optional enum-valued query parameter, rejecting
// unknown values before any data access.
func parseEnumQuery(c echo.Context, name string, valid func(string) bool) (string, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return "", nil
	}
	if !valid(raw) {
		return "", fmt.Errorf("%w: query parameter '%s' has unknown value '%s'", apperrors.ErrValidation, name, raw)
	}
	return raw, nil
}
