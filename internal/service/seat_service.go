package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/queue"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

// SeatService owns individual seats and the reservation lifecycle.
// Reservation state is a record per (seat, event) pair: reserving
// creates the record together with its ticket fields, unreserving
// deletes it. Broker publishes are best effort and never fail the
// triggering call.
type SeatService struct {
	seats        SeatStore
	rows         RowStore
	reservations ReservationStore
	events       EventStore
	customers    CustomerStore
	publisher    TicketPublisher // may be nil, which disables publishing
}

// NewSeatService constructs a SeatService. The publisher may be nil;
// every store must be non-nil.
func NewSeatService(seats SeatStore, rows RowStore, reservations ReservationStore, events EventStore, customers CustomerStore, publisher TicketPublisher) *SeatService {
	if seats == nil || rows == nil || reservations == nil || events == nil || customers == nil {
		panic("nil store passed to NewSeatService")
	}
	return &SeatService{
		seats:        seats,
		rows:         rows,
		reservations: reservations,
		events:       events,
		customers:    customers,
		publisher:    publisher,
	}
}

// CreateSeat creates a single seat in a row. Seat numbers are unique
// within their row.
func (s *SeatService) CreateSeat(ctx context.Context, rowID uint64, seatNumber uint32) (*model.Seat, error) {
	if seatNumber == 0 {
		return nil, invalid("seat number must be greater than zero")
	}
	if _, err := s.rows.GetByID(ctx, rowID); err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, notFound("row %d", rowID)
		}
		return nil, err
	}
	exists, err := s.seats.NumberExists(ctx, rowID, seatNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, invalid("seat number %d already exists in row %d", seatNumber, rowID)
	}
	seat := &model.Seat{RowID: rowID, SeatNumber: seatNumber}
	if err := s.seats.Create(ctx, seat); err != nil {
		return nil, err
	}
	return seat, nil
}

// GetSeat returns a seat by ID.
func (s *SeatService) GetSeat(ctx context.Context, seatID uint64) (*model.Seat, error) {
	seat, err := s.seats.GetByID(ctx, seatID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return nil, notFound("seat %d", seatID)
		}
		return nil, err
	}
	return seat, nil
}

// DeleteSeat removes a seat and any reservations bound to it.
func (s *SeatService) DeleteSeat(ctx context.Context, seatID uint64) error {
	err := s.seats.DeleteCascade(ctx, seatID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return notFound("seat %d", seatID)
		}
		return err
	}
	return nil
}

// Reserve books a seat for an event and issues the ticket. Event and
// customer are required and must exist; a seat already reserved for the
// same event fails validation. The same seat stays reservable for other
// events.
func (s *SeatService) Reserve(ctx context.Context, seatID, eventID, customerID uint64, priceCents uint32, ticketType string) (*model.Reservation, error) {
	if eventID == 0 {
		return nil, invalid("event cannot be null")
	}
	if customerID == 0 {
		return nil, invalid("customer cannot be null")
	}
	if ticketType == "" {
		ticketType = model.TicketTypeStandard
	}
	if _, err := s.GetSeat(ctx, seatID); err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, notFound("event %d", eventID)
		}
		return nil, err
	}
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, notFound("customer %d", customerID)
		}
		return nil, err
	}

	res := &model.Reservation{
		SeatID:     seatID,
		EventID:    eventID,
		CustomerID: customerID,
		PriceCents: priceCents,
		TicketType: ticketType,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, invalid("seat %d is already reserved for event %d", seatID, eventID)
		}
		if errors.Is(err, repository.ErrSeatNotFound) {
			return nil, notFound("seat %d", seatID)
		}
		return nil, err
	}

	if s.publisher != nil {
		ev := queue.TicketIssuedEvent{
			ReservationID: res.ID,
			TicketRef:     res.TicketRef,
			SeatID:        res.SeatID,
			EventID:       res.EventID,
			EventName:     event.Name,
			CustomerID:    res.CustomerID,
			PriceCents:    res.PriceCents,
			TicketType:    res.TicketType,
			IssuedAt:      time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishTicketIssued(ctx, ev); err != nil {
			log.Printf("seat-service: publish ticket.issued failed: %v", err)
		}
	}
	return res, nil
}

// Unreserve releases a seat for an event, deleting the reservation and
// voiding its ticket. Releasing a seat that is not reserved for the
// event fails validation.
func (s *SeatService) Unreserve(ctx context.Context, seatID, eventID uint64) error {
	if eventID == 0 {
		return invalid("event cannot be null")
	}
	if _, err := s.GetSeat(ctx, seatID); err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, seatID, eventID); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return invalid("seat %d is not reserved for event %d", seatID, eventID)
		}
		return err
	}

	if s.publisher != nil {
		ev := queue.SeatReleasedEvent{
			SeatID:     seatID,
			EventID:    eventID,
			ReleasedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishSeatReleased(ctx, ev); err != nil {
			log.Printf("seat-service: publish seat.released failed: %v", err)
		}
	}
	return nil
}

// ReservationsForSeat returns every reservation held on a seat across
// all events, ordered by creation. A seat reserved for several events
// holds one entry per event.
func (s *SeatService) ReservationsForSeat(ctx context.Context, seatID uint64) ([]model.Reservation, error) {
	if _, err := s.GetSeat(ctx, seatID); err != nil {
		return nil, err
	}
	out, err := s.reservations.ListBySeat(ctx, seatID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Reservation{}
	}
	return out, nil
}

// IsReservedForEvent reports whether the seat currently holds a
// reservation for the given event.
func (s *SeatService) IsReservedForEvent(ctx context.Context, seatID, eventID uint64) (bool, error) {
	_, err := s.reservations.GetBySeatAndEvent(ctx, seatID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
