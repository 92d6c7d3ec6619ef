package model

import "time"

// Section is a named subdivision of a venue containing rows of seats.
// Section names are unique within their venue (case-insensitive, enforced
// by a UNIQUE(venue_id, name) index on a case-insensitive collation).
// Ownership is ID-based: a section knows its venue only through VenueID.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue to which this section belongs.
//  Name      – section name, unique per venue.
//  Capacity  – declared capacity of the section.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Section struct {
	ID        uint64    `json:"id"`         // sections.id
	VenueID   uint64    `json:"venue_id"`   // sections.venue_id
	Name      string    `json:"name"`       // sections.name
	Capacity  uint32    `json:"capacity"`   // sections.capacity
	CreatedAt time.Time `json:"created_at"` // sections.created_at
	UpdatedAt time.Time `json:"updated_at"` // sections.updated_at
}

// DefaultSectionName is the name given to the synthetic section created
// for venues without seat-level granularity.
const DefaultSectionName = "Default Section"
