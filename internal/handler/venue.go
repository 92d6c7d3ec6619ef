package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// VenueHandler exposes venue lifecycle and venue-scoped section
// operations.
type VenueHandler struct {
	Venues   *service.VenueService
	Sections *service.SectionService
}

// NewVenueHandler constructs a VenueHandler and panics if a dependency is nil.
func NewVenueHandler(venues *service.VenueService, sections *service.SectionService) *VenueHandler {
	if venues == nil || sections == nil {
		panic("nil service passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: venues, Sections: sections}
}

// CreateVenue handles POST /v1/venues. Venues created with
// has_seats=false get a synthetic "Default Section" covering the whole
// capacity.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Capacity uint32 `json:"capacity"`
		HasSeats bool   `json:"has_seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	v, err := h.Venues.CreateVenue(c.Request().Context(), body.Name, body.Location, body.Capacity, body.HasSeats)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

// GetVenue handles GET /v1/venues/:id.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	v, err := h.Venues.GetVenue(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// UpdateVenue handles PUT /v1/venues/:id.
func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Capacity uint32 `json:"capacity"`
		HasSeats bool   `json:"has_seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	v, err := h.Venues.UpdateVenue(c.Request().Context(), id, body.Name, body.Location, body.Capacity, body.HasSeats)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// DeleteVenue handles DELETE /v1/venues/:id. Deletion cascades through
// sections, rows, seats and their reservations; a missing venue yields
// 404 without touching anything.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	found, err := h.Venues.DeleteVenue(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchVenues handles GET /v1/venues?q=keyword, matching the keyword
// against venue name or location case-insensitively. Without a keyword
// it lists every venue.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("q"))
	venues, err := h.Venues.Search(c.Request().Context(), keyword)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, venues)
}

// AddSections handles POST /v1/venues/:id/sections. It creates count
// sections named "{base_name} 1" .. "{base_name} {count}".
func (h *VenueHandler) AddSections(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Count    int    `json:"count"`
		Capacity uint32 `json:"capacity"`
		BaseName string `json:"base_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sections, err := h.Venues.AddSections(c.Request().Context(), id, body.Count, body.Capacity, body.BaseName)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, sections)
}

// ListSections handles GET /v1/venues/:id/sections.
func (h *VenueHandler) ListSections(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	sections, err := h.Venues.Sections(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sections)
}

// CreateSection handles POST /v1/venues/:id/section, creating a single
// named section in the venue.
func (h *VenueHandler) CreateSection(c echo.Context) error {
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
	sec, err := h.Sections.CreateSection(c.Request().Context(), id, body.Capacity, body.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, sec)
}
