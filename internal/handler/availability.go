package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// AvailabilityHandler answers "which seats are free for this event"
// at row, section and venue granularity.
type AvailabilityHandler struct {
	Venues   *service.VenueService
	Sections *service.SectionService
	Rows     *service.RowService
}

// NewAvailabilityHandler constructs an AvailabilityHandler and panics if a dependency is nil.
func NewAvailabilityHandler(venues *service.VenueService, sections *service.SectionService, rows *service.RowService) *AvailabilityHandler {
	if venues == nil || sections == nil || rows == nil {
		panic("nil service passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{Venues: venues, Sections: sections, Rows: rows}
}

// VenueSeats handles GET /v1/venues/:id/available-seats?event_id=N.
func (h *AvailabilityHandler) VenueSeats(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	eventID, err := queryID(c, "event_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	seats, err := h.Venues.AvailableSeats(c.Request().Context(), id, eventID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, seats)
}

// SectionSeats handles GET /v1/sections/:id/available-seats?event_id=N.
func (h *AvailabilityHandler) SectionSeats(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	eventID, err := queryID(c, "event_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	seats, err := h.Sections.AvailableSeats(c.Request().Context(), id, eventID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, seats)
}

// RowSeats handles GET /v1/rows/:id/available-seats?event_id=N.
func (h *AvailabilityHandler) RowSeats(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	eventID, err := queryID(c, "event_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	seats, err := h.Rows.AvailableSeats(c.Request().Context(), id, eventID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, seats)
}
