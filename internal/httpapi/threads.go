package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// listThreads serves GET /threads with optional tenant/customer/channel/status filters.
func (s *Server) listThreads(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}

	tenantID, err := parseOptionalUUIDQuery(c, "tenant_id")
	if err != nil {
		return writeError(c, err)
	}
	customerID, err := parseOptionalUUIDQuery(c, "customer_id")
	if err != nil {
		return writeError(c, err)
	}
	channel, err := parseEnumQuery(c, "channel", model.ValidChannel)
	if err != nil {
		return writeError(c, err)
	}
	status, err := parseEnumQuery(c, "status", model.ValidThreadStatus)
	if err != nil {
		return writeError(c, err)
	}

	filter := storage.ThreadFilter{
		TenantID:   tenantID,
		CustomerID: customerID,
		Channel:    channel,
		Status:     status,
	}

	threads, total, err := s.deps.Repo.ListThreads(c.Request().Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]ThreadResponse, 0, len(threads))
	for _, t := range threads {
		items = append(items, newThreadResponse(t))
	}
	return c.JSON(http.StatusOK, NewEnvelope(items, total, page))
}

// getThread serves GET /threads/:id.
func (s *Server) getThread(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	thread, err := s.deps.Repo.FindThreadByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newThreadResponse(*thread))
}
