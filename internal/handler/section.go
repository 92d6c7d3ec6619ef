package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// SectionHandler exposes section updates, deletion, name search and
// section-scoped row operations.
type SectionHandler struct {
	Sections *service.SectionService
}

// NewSectionHandler constructs a SectionHandler and panics if the service is nil.
func NewSectionHandler(sections *service.SectionService) *SectionHandler {
	if sections == nil {
		panic("nil service passed to NewSectionHandler")
	}
	return &SectionHandler{Sections: sections}
}

// GetSection handles GET /v1/sections/:id.
func (h *SectionHandler) GetSection(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	sec, err := h.Sections.GetSection(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sec)
}

// UpdateSection handles PUT /v1/sections/:id.
func (h *SectionHandler) UpdateSection(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Name     string `json:"name"`
		Capacity uint32 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sec, err := h.Sections.UpdateSection(c.Request().Context(), id, body.Name, body.Capacity)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sec)
}

// DeleteSection handles DELETE /v1/sections/:id, cascading through rows,
// seats and their reservations.
func (h *SectionHandler) DeleteSection(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Sections.DeleteSection(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SectionsByName handles GET /v1/sections?name=, a case-insensitive
// exact-name search across all venues.
func (h *SectionHandler) SectionsByName(c echo.Context) error {
	sections, err := h.Sections.SectionsByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sections)
}

// AddRows handles POST /v1/sections/:id/rows, creating count rows of the
// given capacity.
func (h *SectionHandler) AddRows(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Count    int    `json:"count"`
		Capacity uint32 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rows, err := h.Sections.AddRows(c.Request().Context(), id, body.Count, body.Capacity)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, rows)
}

// ListRows handles GET /v1/sections/:id/rows.
func (h *SectionHandler) ListRows(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rows, err := h.Sections.Rows(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
