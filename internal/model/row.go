package model

import "time"

// Row is an ordered line of seats within a section.  The table is named
// `venue_rows` because ROW/ROWS are reserved words in MySQL 8.
//
// Fields:
//  ID        – primary key identifier.
//  SectionID – section to which this row belongs.
//  Capacity  – declared capacity of the row.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Row struct {
	ID        uint64    `json:"id"`         // venue_rows.id
	SectionID uint64    `json:"section_id"` // venue_rows.section_id
	Capacity  uint32    `json:"capacity"`   // venue_rows.capacity
	CreatedAt time.Time `json:"created_at"` // venue_rows.created_at
	UpdatedAt time.Time `json:"updated_at"` // venue_rows.updated_at
}
