package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// RecommendHandler serves seat recommendation endpoints: the closest
// free seat next to an in-progress selection, and a customer's
// preferred-section pick across a venue.
type RecommendHandler struct {
	Rows      *service.RowService
	Recommend *service.RecommendService
}

// NewRecommendHandler constructs a RecommendHandler and panics if a dependency is nil.
func NewRecommendHandler(rows *service.RowService, recommend *service.RecommendService) *RecommendHandler {
	if rows == nil || recommend == nil {
		panic("nil service passed to NewRecommendHandler")
	}
	return &RecommendHandler{Rows: rows, Recommend: recommend}
}

// ClosestSeat handles GET /v1/sections/:id/rows/:rowId/closest-seat.
// The selected query parameter carries already-picked seat numbers as a
// comma-separated list, e.g. ?event_id=7&selected=4,5.
func (h *RecommendHandler) ClosestSeat(c echo.Context) error {
	sectionID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rowID, err := paramID(c, "rowId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	eventID, err := queryID(c, "event_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	selected, err := parseSeatNumbers(c.QueryParam("selected"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid selected seat numbers"})
	}
	seat, err := h.Rows.RecommendClosestSeat(c.Request().Context(), sectionID, rowID, eventID, selected)
	if err != nil {
		return writeServiceError(c, err)
	}
	if seat == nil {
		return c.JSON(http.StatusOK, echo.Map{"seat": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"seat": seat})
}

// PreferredSeat handles GET /v1/venues/:id/recommended-seat?event_id=N&customer_id=M.
func (h *RecommendHandler) PreferredSeat(c echo.Context) error {
	venueID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	eventID, err := queryID(c, "event_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	customerID, err := queryID(c, "customer_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	seat, err := h.Recommend.RecommendSeat(c.Request().Context(), customerID, venueID, eventID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if seat == nil {
		return c.JSON(http.StatusOK, echo.Map{"seat": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"seat": seat})
}

// parseSeatNumbers splits a comma-separated list of seat numbers. An
// empty string yields an empty slice.
func parseSeatNumbers(raw string) ([]uint32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	numbers := make([]uint32, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, uint32(n))
	}
	return numbers, nil
}
