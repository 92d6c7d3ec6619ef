package model

import "time"

// Seat is the atomic reservable unit.  Seat numbers are 1-based and
// unique within their row (UNIQUE(row_id, seat_number)).  A seat carries
// no reservation state of its own; availability for an event is decided
// by the absence of a reservation record for the (seat, event) pair.
//
// Fields:
//  ID         – primary key identifier.
//  RowID      – row to which this seat belongs.
//  SeatNumber – position of the seat within the row (1-based).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Seat struct {
	ID         uint64    `json:"id"`          // seats.id
	RowID      uint64    `json:"row_id"`      // seats.row_id
	SeatNumber uint32    `json:"seat_number"` // seats.seat_number
	CreatedAt  time.Time `json:"created_at"`  // seats.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // seats.updated_at
}
