package model

import "time"

// Venue represents a physical location that hosts ticketed events.
// A venue contains sections, which in turn contain rows of seats.
// Venues created without seat-level granularity (HasSeats=false)
// receive a single synthetic "Default Section" sized to the full
// capacity.  This struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – human readable venue name.
//  Location  – city or address of the venue.
//  Capacity  – declared total capacity, must be positive.
//  HasSeats  – whether the venue tracks individual seats.
//  CreatedAt – timestamp when the venue was created.
//  UpdatedAt – timestamp of last update.
type Venue struct {
	ID        uint64    `json:"id"`         // venues.id
	Name      string    `json:"name"`       // venues.name
	Location  string    `json:"location"`   // venues.location
	Capacity  uint32    `json:"capacity"`   // venues.capacity
	HasSeats  bool      `json:"has_seats"`  // venues.has_seats
	CreatedAt time.Time `json:"created_at"` // venues.created_at
	UpdatedAt time.Time `json:"updated_at"` // venues.updated_at
}
