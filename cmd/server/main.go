package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-reservation/internal/config"
	"github.com/iliyamo/venue-seat-reservation/internal/database"
	"github.com/iliyamo/venue-seat-reservation/internal/handler"
	"github.com/iliyamo/venue-seat-reservation/internal/queue"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
	"github.com/iliyamo/venue-seat-reservation/internal/router"
	"github.com/iliyamo/venue-seat-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.OpenFromConfig(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()

	// Background consumer drains ticket events into the audit log. It
	// reconnects on broker failures, so a dead broker at boot is not fatal.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	venueRepo := repository.NewVenueRepo(db)
	sectionRepo := repository.NewSectionRepo(db)
	rowRepo := repository.NewRowRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	eventRepo := repository.NewEventRepo(db)
	customerRepo := repository.NewCustomerRepo(db)

	publisher := queue.NewPublisher()

	venueSvc := service.NewVenueService(venueRepo, sectionRepo, seatRepo)
	sectionSvc := service.NewSectionService(sectionRepo, venueRepo, rowRepo, seatRepo)
	rowSvc := service.NewRowService(rowRepo, sectionRepo, seatRepo)
	seatSvc := service.NewSeatService(seatRepo, rowRepo, reservationRepo, eventRepo, customerRepo, publisher)
	recommendSvc := service.NewRecommendService(customerRepo, venueRepo, sectionRepo, seatRepo)

	h := router.Handlers{
		Venue:        handler.NewVenueHandler(venueSvc, sectionSvc),
		Section:      handler.NewSectionHandler(sectionSvc),
		Seating:      handler.NewSeatingHandler(rowSvc, seatSvc),
		Reservation:  handler.NewReservationHandler(seatSvc),
		Availability: handler.NewAvailabilityHandler(venueSvc, sectionSvc, rowSvc),
		Recommend:    handler.NewRecommendHandler(rowSvc, recommendSvc),
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
