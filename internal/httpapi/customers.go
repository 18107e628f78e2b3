package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// listCustomers serves GET /customers with optional tenant/platform filters.
func (s *Server) listCustomers(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}

	tenantID, err := parseOptionalUUIDQuery(c, "tenant_id")
	if err != nil {
		return writeError(c, err)
	}
	filter := storage.CustomerFilter{
		TenantID: tenantID,
		Platform: c.QueryParam("platform"),
	}

	customers, total, err := s.deps.Repo.ListCustomers(c.Request().Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		items = append(items, newCustomerResponse(cust))
	}
	return c.JSON(http.StatusOK, NewEnvelope(items, total, page))
}

// getCustomer serves GET /customers/:id.
func (s *Server) getCustomer(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	customer, err := s.deps.Repo.FindCustomerByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newCustomerResponse(*customer))
}
