package model

import "time"

// Event is an external entity consumed by this subsystem.  Event
// management (artists, athletes, scheduling) lives elsewhere; the
// reservation flow only needs to verify that an event exists before
// binding a seat to it.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – event name.
//  StartsAt  – when the event begins.
//  EndsAt    – when the event ends.
//  CreatedAt – creation timestamp.
type Event struct {
	ID        uint64    `json:"id"`         // events.id
	Name      string    `json:"name"`       // events.name
	StartsAt  time.Time `json:"starts_at"`  // events.starts_at
	EndsAt    time.Time `json:"ends_at"`    // events.ends_at
	CreatedAt time.Time `json:"created_at"` // events.created_at
}
