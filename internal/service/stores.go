package service

import (
	"context"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/queue"
)

// The store interfaces below describe what each service needs from the
// persistence layer. The concrete implementations live in
// internal/repository; tests substitute function-field mocks.

// VenueStore persists venues.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	Search(ctx context.Context, keyword string) ([]model.Venue, error)
	GetAll(ctx context.Context) ([]model.Venue, error)
	DeleteCascade(ctx context.Context, venueID uint64) (bool, error)
}

// SectionStore persists sections.
type SectionStore interface {
	Create(ctx context.Context, s *model.Section) error
	GetByID(ctx context.Context, id uint64) (*model.Section, error)
	Update(ctx context.Context, s *model.Section) error
	ListByVenue(ctx context.Context, venueID uint64) ([]model.Section, error)
	FindByName(ctx context.Context, name string) ([]model.Section, error)
	NameExists(ctx context.Context, venueID uint64, name string) (bool, error)
	DeleteCascade(ctx context.Context, sectionID uint64) (bool, error)
}

// RowStore persists seating rows.
type RowStore interface {
	Create(ctx context.Context, row *model.Row) error
	GetByID(ctx context.Context, id uint64) (*model.Row, error)
	Update(ctx context.Context, row *model.Row) error
	ListBySection(ctx context.Context, sectionID uint64) ([]model.Row, error)
	MaxSeatNumber(ctx context.Context, rowID uint64) (uint32, error)
	DeleteCascade(ctx context.Context, rowID uint64) (bool, error)
}

// SeatStore persists seats and answers the canonical availability
// queries.
type SeatStore interface {
	Create(ctx context.Context, s *model.Seat) error
	CreateBulk(ctx context.Context, seats []model.Seat) error
	GetByID(ctx context.Context, id uint64) (*model.Seat, error)
	NumberExists(ctx context.Context, rowID uint64, seatNumber uint32) (bool, error)
	ListByRow(ctx context.Context, rowID uint64) ([]model.Seat, error)
	AvailableByRow(ctx context.Context, rowID, eventID uint64) ([]model.Seat, error)
	AvailableBySection(ctx context.Context, sectionID, eventID uint64) ([]model.Seat, error)
	AvailableByVenue(ctx context.Context, venueID, eventID uint64) ([]model.Seat, error)
	FirstAvailableInSection(ctx context.Context, sectionID, eventID uint64) (*model.Seat, error)
	DeleteCascade(ctx context.Context, seatID uint64) error
}

// ReservationStore persists reservations (tickets).
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, seatID, eventID uint64) error
	GetBySeatAndEvent(ctx context.Context, seatID, eventID uint64) (*model.Reservation, error)
	ListBySeat(ctx context.Context, seatID uint64) ([]model.Reservation, error)
}

// EventStore reads events owned by the external event-management
// collaborator.
type EventStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Event, error)
}

// CustomerStore reads customers and their section preference weights.
type CustomerStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Customer, error)
}

// TicketPublisher emits domain events to the message broker. A nil
// publisher disables publishing; failures are logged and never fail the
// triggering call.
type TicketPublisher interface {
	PublishTicketIssued(ctx context.Context, ev queue.TicketIssuedEvent) error
	PublishSeatReleased(ctx context.Context, ev queue.SeatReleasedEvent) error
}
