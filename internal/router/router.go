package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/venue-seat-reservation/internal/config"
	"github.com/iliyamo/venue-seat-reservation/internal/handler"
	"github.com/iliyamo/venue-seat-reservation/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Venue        *handler.VenueHandler
	Section      *handler.SectionHandler
	Seating      *handler.SeatingHandler
	Reservation  *handler.ReservationHandler
	Availability *handler.AvailabilityHandler
	Recommend    *handler.RecommendHandler
}

// RegisterRoutes registers operational routes on the provided Echo
// instance. Currently it exposes only a health check, used by load
// balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI mounts the full /v1 surface. Availability and
// recommendation GETs are wrapped in the Redis response cache, and the
// reservation endpoints sit behind the token-bucket rate limiter. A nil
// Redis client disables both middlewares.
func RegisterAPI(e *echo.Echo, h Handlers, rdb *redis.Client) {
	v1 := e.Group("/v1")

	// Venue CRUD and structure.
	v1.POST("/venues", h.Venue.CreateVenue)
	v1.GET("/venues", h.Venue.SearchVenues)
	v1.GET("/venues/:id", h.Venue.GetVenue)
	v1.PUT("/venues/:id", h.Venue.UpdateVenue)
	v1.DELETE("/venues/:id", h.Venue.DeleteVenue)
	v1.POST("/venues/:id/sections", h.Venue.AddSections)
	v1.GET("/venues/:id/sections", h.Venue.ListSections)
	v1.POST("/venues/:id/section", h.Venue.CreateSection)

	// Section CRUD and rows.
	v1.GET("/sections", h.Section.SectionsByName)
	v1.GET("/sections/:id", h.Section.GetSection)
	v1.PUT("/sections/:id", h.Section.UpdateSection)
	v1.DELETE("/sections/:id", h.Section.DeleteSection)
	v1.POST("/sections/:id/rows", h.Section.AddRows)
	v1.GET("/sections/:id/rows", h.Section.ListRows)

	// Row and seat structure.
	v1.POST("/rows", h.Seating.CreateRow)
	v1.PUT("/rows/:id", h.Seating.UpdateRow)
	v1.DELETE("/rows/:id", h.Seating.DeleteRow)
	v1.POST("/rows/:id/seats", h.Seating.AddSeats)
	v1.GET("/rows/:id/seats", h.Seating.ListSeats)
	v1.POST("/seats", h.Seating.CreateSeat)
	v1.DELETE("/seats/:id", h.Seating.DeleteSeat)

	// Reservation lifecycle. The rate limiter protects the two write
	// endpoints from burst hammering during on-sales.
	var limit echo.MiddlewareFunc
	if rdb != nil {
		limit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	}
	reserve := v1.Group("/seats/:id")
	if limit != nil {
		reserve.Use(limit)
	}
	reserve.POST("/reserve", h.Reservation.Reserve)
	reserve.POST("/unreserve", h.Reservation.Unreserve)
	v1.GET("/seats/:id/status", h.Reservation.Status)
	v1.GET("/seats/:id/reservations", h.Reservation.History)

	// Availability and recommendation reads, cached with a short TTL.
	reads := v1.Group("")
	if rdb != nil {
		reads.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	reads.GET("/venues/:id/available-seats", h.Availability.VenueSeats)
	reads.GET("/sections/:id/available-seats", h.Availability.SectionSeats)
	reads.GET("/rows/:id/available-seats", h.Availability.RowSeats)
	reads.GET("/sections/:id/rows/:rowId/closest-seat", h.Recommend.ClosestSeat)
	reads.GET("/venues/:id/recommended-seat", h.Recommend.PreferredSeat)
}
