package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// listEvents serves GET /events with optional tenant/thread/type filters.
func (s *Server) listEvents(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}

	tenantID, err := parseOptionalUUIDQuery(c, "tenant_id")
	if err != nil {
		return writeError(c, err)
	}
	threadID, err := parseOptionalUUIDQuery(c, "thread_id")
	if err != nil {
		return writeError(c, err)
	}
	eventType, err := parseEnumQuery(c, "type", model.ValidEventType)
	if err != nil {
		return writeError(c, err)
	}

	filter := storage.EventFilter{
		TenantID: tenantID,
		ThreadID: threadID,
		Type:     eventType,
	}

	events, total, err := s.deps.Repo.ListEvents(c.Request().Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, newEventResponse(e))
	}
	return c.JSON(http.StatusOK, NewEnvelope(items, total, page))
}

// getEvent serves GET /events/:id.
func (s *Server) getEvent(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	event, err := s.deps.Repo.FindEventByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newEventResponse(*event))
}
