package handler // handler defines http handlers

import (
	"errors"   // errors provides Is comparisons against service error kinds
	"net/http" // http defines status code constants
	"strconv"  // strconv converts URL parameters to numbers

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

// paramID parses a numeric path parameter. A zero or malformed value is
// reported as an error so handlers can return 400 uniformly.
func paramID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// queryID parses a numeric query parameter the same way.
func queryID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// writeServiceError translates the service error kinds into HTTP
// responses: EntityNotFound -> 404, ValidationError -> 400,
// BusinessLogicError -> 409, everything else -> 500.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrBusinessLogic):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
