package model

import "time"

// Customer is an external entity consumed by this subsystem.  Accounts
// and authentication are handled elsewhere; the recommendation engine
// only reads the customer's section preference weights, and the
// reservation flow only verifies that the customer exists.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – customer display name.
//  Email              – contact address.
//  SectionPreferences – map from section ID to an integer preference
//                       weight; sections missing from the map weigh 0.
//  CreatedAt          – creation timestamp.
type Customer struct {
	ID                 uint64         `json:"id"`                  // customers.id
	Name               string         `json:"name"`                // customers.name
	Email              string         `json:"email"`               // customers.email
	SectionPreferences map[uint64]int `json:"section_preferences"` // customer_section_preferences rows
	CreatedAt          time.Time      `json:"created_at"`          // customers.created_at
}

// PreferenceFor returns the customer's weight for a section, defaulting
// to 0 when the section is absent from the preference map.
func (c *Customer) PreferenceFor(sectionID uint64) int {
	if c == nil || c.SectionPreferences == nil {
		return 0
	}
	return c.SectionPreferences[sectionID]
}
