package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// SeatingHandler exposes row and seat structure operations: creating
// rows, bulk seat creation and single-seat management.
type SeatingHandler struct {
	Rows  *service.RowService
	Seats *service.SeatService
}

// NewSeatingHandler constructs a SeatingHandler and panics if a dependency is nil.
func NewSeatingHandler(rows *service.RowService, seats *service.SeatService) *SeatingHandler {
	if rows == nil || seats == nil {
		panic("nil service passed to NewSeatingHandler")
	}
	return &SeatingHandler{Rows: rows, Seats: seats}
}

// CreateRow handles POST /v1/rows.
func (h *SeatingHandler) CreateRow(c echo.Context) error {
	var body struct {
		SectionID uint64 `json:"section_id"`
		Capacity  uint32 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	row, err := h.Rows.CreateRow(c.Request().Context(), body.SectionID, body.Capacity)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

// UpdateRow handles PUT /v1/rows/:id, changing the declared capacity.
func (h *SeatingHandler) UpdateRow(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Capacity uint32 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	row, err := h.Rows.UpdateRow(c.Request().Context(), id, body.Capacity)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// DeleteRow handles DELETE /v1/rows/:id, cascading through the row's
// seats and their reservations.
func (h *SeatingHandler) DeleteRow(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Rows.DeleteRow(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddSeats handles POST /v1/rows/:id/seats. Numbering continues from the
// highest seat number already in the row.
func (h *SeatingHandler) AddSeats(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seats, err := h.Rows.AddSeats(c.Request().Context(), id, body.Count)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, seats)
}

// ListSeats handles GET /v1/rows/:id/seats.
func (h *SeatingHandler) ListSeats(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	seats, err := h.Rows.Seats(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, seats)
}

// CreateSeat handles POST /v1/seats, creating one numbered seat in a row.
func (h *SeatingHandler) CreateSeat(c echo.Context) error {
	var body struct {
		RowID      uint64 `json:"row_id"`
		SeatNumber uint32 `json:"seat_number"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat, err := h.Seats.CreateSeat(c.Request().Context(), body.RowID, body.SeatNumber)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, seat)
}

// DeleteSeat handles DELETE /v1/seats/:id.
func (h *SeatingHandler) DeleteSeat(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Seats.DeleteSeat(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
