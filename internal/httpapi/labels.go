package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// listLabels serves GET /labels with an optional tenant filter.
func (s *Server) listLabels(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}

	tenantID, err := parseOptionalUUIDQuery(c, "tenant_id")
	if err != nil {
		return writeError(c, err)
	}
	filter := storage.LabelFilter{TenantID: tenantID}

	labels, total, err := s.deps.Repo.ListLabels(c.Request().Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]LabelResponse, 0, len(labels))
	for _, l := range labels {
		items = append(items, newLabelResponse(l))
	}
	return c.JSON(http.StatusOK, NewEnvelope(items, total, page))
}

// getLabel serves GET /labels/:id.
func (s *Server) getLabel(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	label, err := s.deps.Repo.FindLabelByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newLabelResponse(*label))
}
