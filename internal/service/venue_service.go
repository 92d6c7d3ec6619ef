package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

// VenueService owns the venue level of the hierarchy: venue lifecycle,
// bulk section creation, venue-wide availability and keyword search.
type VenueService struct {
	venues   VenueStore
	sections SectionStore
	seats    SeatStore
}

// NewVenueService constructs a VenueService and panics if a dependency is nil.
func NewVenueService(venues VenueStore, sections SectionStore, seats SeatStore) *VenueService {
	if venues == nil || sections == nil || seats == nil {
		panic("nil store passed to NewVenueService")
	}
	return &VenueService{venues: venues, sections: sections, seats: seats}
}

// CreateVenue creates a venue. Name and location must be non-blank and
// capacity positive. When hasSeats is false the venue gets one synthetic
// "Default Section" sized to the full capacity, so capacity bookkeeping
// works the same for both kinds of venue.
func (s *VenueService) CreateVenue(ctx context.Context, name, location string, capacity uint32, hasSeats bool) (*model.Venue, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" {
		return nil, businessRule("venue name cannot be empty")
	}
	if location == "" {
		return nil, businessRule("venue location cannot be empty")
	}
	if capacity == 0 {
		return nil, invalid("venue capacity must be greater than zero")
	}
	v := &model.Venue{Name: name, Location: location, Capacity: capacity, HasSeats: hasSeats}
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	if !hasSeats {
		sec := &model.Section{VenueID: v.ID, Name: model.DefaultSectionName, Capacity: capacity}
		if err := s.sections.Create(ctx, sec); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// GetVenue returns a venue by ID.
func (s *VenueService) GetVenue(ctx context.Context, venueID uint64) (*model.Venue, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, notFound("venue %d", venueID)
		}
		return nil, err
	}
	return v, nil
}

// UpdateVenue mutates an existing venue's name, location, capacity and
// seat granularity flag.
func (s *VenueService) UpdateVenue(ctx context.Context, venueID uint64, name, location string, capacity uint32, hasSeats bool) (*model.Venue, error) {
	v, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return nil, businessRule("venue name and location cannot be empty")
	}
	if capacity == 0 {
		return nil, invalid("venue capacity must be greater than zero")
	}
	v.Name = name
	v.Location = location
	v.Capacity = capacity
	v.HasSeats = hasSeats
	if err := s.venues.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, notFound("venue %d", venueID)
		}
		return nil, err
	}
	return v, nil
}

// DeleteVenue removes a venue and cascades through sections, rows, seats
// and their reservations. It reports false, without error, when the
// venue does not exist.
func (s *VenueService) DeleteVenue(ctx context.Context, venueID uint64) (bool, error) {
	return s.venues.DeleteCascade(ctx, venueID)
}

// AddSections creates count sections named "{baseName} 1" .. "{baseName}
// {count}" in the venue. A name collision with an existing section fails
// the call before any further section is created.
func (s *VenueService) AddSections(ctx context.Context, venueID uint64, count int, sectionCapacity uint32, baseName string) ([]model.Section, error) {
	if count <= 0 {
		return nil, invalid("section count must be greater than zero")
	}
	baseName = strings.TrimSpace(baseName)
	if baseName == "" {
		return nil, invalid("section base name cannot be empty")
	}
	if _, err := s.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}
	created := make([]model.Section, 0, count)
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("%s %d", baseName, i)
		exists, err := s.sections.NameExists(ctx, venueID, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, invalid("duplicate section name: %s", name)
		}
		sec := model.Section{VenueID: venueID, Name: name, Capacity: sectionCapacity}
		if err := s.sections.Create(ctx, &sec); err != nil {
			return nil, err
		}
		created = append(created, sec)
	}
	return created, nil
}

// Sections lists the sections of a venue in insertion order.
func (s *VenueService) Sections(ctx context.Context, venueID uint64) ([]model.Section, error) {
	if _, err := s.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}
	return s.sections.ListByVenue(ctx, venueID)
}

// AvailableSeats returns every seat of the venue with no reservation for
// the event. A venue that does not exist, or that does not track
// individual seats, yields an empty list.
func (s *VenueService) AvailableSeats(ctx context.Context, venueID, eventID uint64) ([]model.Seat, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return []model.Seat{}, nil
		}
		return nil, err
	}
	if !v.HasSeats {
		return []model.Seat{}, nil
	}
	seats, err := s.seats.AvailableByVenue(ctx, venueID, eventID)
	if err != nil {
		return nil, err
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return seats, nil
}

// Search returns venues whose name or location matches the keyword,
// case-insensitively.
func (s *VenueService) Search(ctx context.Context, keyword string) ([]model.Venue, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.venues.GetAll(ctx)
	}
	return s.venues.Search(ctx, keyword)
}
