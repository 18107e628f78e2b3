package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// listTenants serves GET /tenants.
func (s *Server) listTenants(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}

	tenants, total, err := s.deps.Repo.ListTenants(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		items = append(items, newTenantResponse(t))
	}
	return c.JSON(http.StatusOK, NewEnvelope(items, total, page))
}

// getTenant serves GET /tenants/:id.
func (s *Server) getTenant(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	tenant, err := s.deps.Repo.FindTenantByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newTenantResponse(*tenant))
}
