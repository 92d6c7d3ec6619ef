package model

import "time"

// Ticket types accepted by the reservation flow.  The subsystem treats
// the type as opaque beyond membership in this set.
const (
	TicketTypeStandard = "STANDARD"
	TicketTypeVIP      = "VIP"
	TicketTypeEarly    = "EARLY_BIRD"
)

// Reservation binds a seat to an event for a customer and doubles as the
// ticket record for that binding.  The UNIQUE(seat_id, event_id) index is
// what makes double-selling a seat for the same event impossible: two
// concurrent reserve calls race on the index, and exactly one wins.
//
// Fields:
//  ID         – primary key identifier.
//  SeatID     – seat being reserved.
//  EventID    – event the seat is reserved for.
//  CustomerID – customer holding the ticket.
//  PriceCents – ticket price in cents; opaque to this subsystem.
//  TicketType – ticket class (STANDARD, VIP, EARLY_BIRD).
//  TicketRef  – UUID handed to the customer as the ticket reference.
//  CreatedAt  – when the reservation was made.
type Reservation struct {
	ID         uint64    `json:"id"`          // reservations.id
	SeatID     uint64    `json:"seat_id"`     // reservations.seat_id
	EventID    uint64    `json:"event_id"`    // reservations.event_id
	CustomerID uint64    `json:"customer_id"` // reservations.customer_id
	PriceCents uint32    `json:"price_cents"` // reservations.price_cents
	TicketType string    `json:"ticket_type"` // reservations.ticket_type
	TicketRef  string    `json:"ticket_ref"`  // reservations.ticket_ref
	CreatedAt  time.Time `json:"created_at"`  // reservations.created_at
}
