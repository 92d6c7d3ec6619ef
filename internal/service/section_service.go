package service

import (
	"context"
	"errors"
	"strings"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

// SectionService owns sections: creation with per-venue name
// uniqueness, updates, cascading deletion, bulk row creation and
// section-scoped availability.
type SectionService struct {
	sections SectionStore
	venues   VenueStore
	rows     RowStore
	seats    SeatStore
}

// NewSectionService constructs a SectionService and panics if a dependency is nil.
func NewSectionService(sections SectionStore, venues VenueStore, rows RowStore, seats SeatStore) *SectionService {
	if sections == nil || venues == nil || rows == nil || seats == nil {
		panic("nil store passed to NewSectionService")
	}
	return &SectionService{sections: sections, venues: venues, rows: rows, seats: seats}
}

// CreateSection creates a section in a venue. The venue reference is
// required, and section names are unique within a venue regardless of
// case.
func (s *SectionService) CreateSection(ctx context.Context, venueID uint64, capacity uint32, name string) (*model.Section, error) {
	if venueID == 0 {
		return nil, businessRule("venue is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("section name cannot be empty")
	}
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, notFound("venue %d", venueID)
		}
		return nil, err
	}
	exists, err := s.sections.NameExists(ctx, venueID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, businessRule("section with name %q already exists in the venue", name)
	}
	sec := &model.Section{VenueID: venueID, Name: name, Capacity: capacity}
	if err := s.sections.Create(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

// GetSection returns a section by ID.
func (s *SectionService) GetSection(ctx context.Context, sectionID uint64) (*model.Section, error) {
	sec, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return nil, notFound("section %d", sectionID)
		}
		return nil, err
	}
	return sec, nil
}

// UpdateSection mutates an existing section's name and capacity. Renames
// keep the per-venue uniqueness invariant.
func (s *SectionService) UpdateSection(ctx context.Context, sectionID uint64, name string, capacity uint32) (*model.Section, error) {
	sec, err := s.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("section name cannot be empty")
	}
	if !strings.EqualFold(name, sec.Name) {
		exists, err := s.sections.NameExists(ctx, sec.VenueID, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, businessRule("section with name %q already exists in the venue", name)
		}
	}
	sec.Name = name
	sec.Capacity = capacity
	if err := s.sections.Update(ctx, sec); err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return nil, notFound("section %d", sectionID)
		}
		return nil, err
	}
	return sec, nil
}

// DeleteSection removes a section and cascades through its rows, seats
// and their reservations.
func (s *SectionService) DeleteSection(ctx context.Context, sectionID uint64) error {
	found, err := s.sections.DeleteCascade(ctx, sectionID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("section %d", sectionID)
	}
	return nil
}

// SectionsByName returns every section matching the name across all
// venues, case-insensitively.
func (s *SectionService) SectionsByName(ctx context.Context, name string) ([]model.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("section name cannot be empty")
	}
	return s.sections.FindByName(ctx, name)
}

// AddRows creates count rows of the given capacity in the section.
func (s *SectionService) AddRows(ctx context.Context, sectionID uint64, count int, rowCapacity uint32) ([]model.Row, error) {
	if count <= 0 {
		return nil, invalid("row count must be greater than zero")
	}
	if _, err := s.GetSection(ctx, sectionID); err != nil {
		return nil, err
	}
	created := make([]model.Row, 0, count)
	for i := 0; i < count; i++ {
		row := model.Row{SectionID: sectionID, Capacity: rowCapacity}
		if err := s.rows.Create(ctx, &row); err != nil {
			return nil, err
		}
		created = append(created, row)
	}
	return created, nil
}

// Rows lists the rows of a section in insertion order.
func (s *SectionService) Rows(ctx context.Context, sectionID uint64) ([]model.Row, error) {
	if _, err := s.GetSection(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.rows.ListBySection(ctx, sectionID)
}

// AvailableSeats flattens the section's rows and returns every seat with
// no reservation for the event. A section that does not exist yields an
// empty list.
func (s *SectionService) AvailableSeats(ctx context.Context, sectionID, eventID uint64) ([]model.Seat, error) {
	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return []model.Seat{}, nil
		}
		return nil, err
	}
	seats, err := s.seats.AvailableBySection(ctx, sectionID, eventID)
	if err != nil {
		return nil, err
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return seats, nil
}
