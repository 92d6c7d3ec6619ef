package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// ReservationHandler exposes the reservation lifecycle for a seat:
// reserving, releasing and checking reservation state per event.
type ReservationHandler struct {
	Seats *service.SeatService
}

// NewReservationHandler constructs a ReservationHandler and panics if the service is nil.
func NewReservationHandler(seats *service.SeatService) *ReservationHandler {
	if seats == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Seats: seats}
}

// Reserve handles POST /v1/seats/:id/reserve.
func (h *ReservationHandler) Reserve(c echo.Context) error {
	seatID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		EventID    uint64 `json:"event_id"`
		CustomerID uint64 `json:"customer_id"`
		PriceCents uint32 `json:"price_cents"`
		TicketType string `json:"ticket_type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Seats.Reserve(c.Request().Context(), seatID, body.EventID, body.CustomerID, body.PriceCents, body.TicketType)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// Unreserve handles POST /v1/seats/:id/unreserve.
func (h *ReservationHandler) Unreserve(c echo.Context) error {
	seatID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		EventID uint64 `json:"event_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Seats.Unreserve(c.Request().Context(), seatID, body.EventID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// History handles GET /v1/seats/:id/reservations, listing the seat's
// reservations across all events.
func (h *ReservationHandler) History(c echo.Context) error {
	seatID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	reservations, err := h.Seats.ReservationsForSeat(c.Request().Context(), seatID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// Status handles GET /v1/seats/:id/status?event_id=N.
func (h *ReservationHandler) Status(c echo.Context) error {
	seatID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	eventID, err := queryID(c, "event_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	reserved, err := h.Seats.IsReservedForEvent(c.Request().Context(), seatID, eventID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"seat_id": seatID, "event_id": eventID, "reserved": reserved})
}
