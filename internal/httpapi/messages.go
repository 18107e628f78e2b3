package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// listMessages serves GET /messages with optional tenant/thread/direction filters.
func (s *Server) listMessages(c echo.Context) error {
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
	direction, err := parseEnumQuery(c, "direction", model.ValidDirection)
	if err != nil {
		return writeError(c, err)
	}

	filter := storage.MessageFilter{
		TenantID:  tenantID,
		ThreadID:  threadID,
		Direction: direction,
	}

	messages, total, err := s.deps.Repo.ListMessages(c.Request().Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, newMessageResponse(m))
	}
	return c.JSON(http.StatusOK, NewEnvelope(items, total, page))
}

// getMessage serves GET /messages/:id.
func (s *Server) getMessage(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	message, err := s.deps.Repo.FindMessageByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newMessageResponse(*message))
}
