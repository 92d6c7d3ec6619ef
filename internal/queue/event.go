// Package queue defines message payloads exchanged over the message
// broker, the publisher that emits them and the background consumer that
// records issued tickets.
package queue

// TicketIssuedEvent is published when a seat is successfully reserved.
// It contains enough information for downstream consumers to log, notify
// or trigger analytics without querying the primary database.
type TicketIssuedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	TicketRef     string `json:"ticket_ref"`
	SeatID        uint64 `json:"seat_id"`
	EventID       uint64 `json:"event_id"`
	EventName     string `json:"event_name"`
	CustomerID    uint64 `json:"customer_id"`
	PriceCents    uint32 `json:"price_cents"`
	TicketType    string `json:"ticket_type"`
	IssuedAt      string `json:"issued_at"`
}

// SeatReleasedEvent is published when a reservation is released and the
// seat becomes available for its event again.
type SeatReleasedEvent struct {
	SeatID     uint64 `json:"seat_id"`
	EventID    uint64 `json:"event_id"`
	ReleasedAt string `json:"released_at"`
}
