package service

import (
	"context"
	"errors"
	"sort"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

// RecommendService is the venue-wide, preference-driven counterpart to
// RowService.RecommendClosestSeat. It is a pure read over the hierarchy
// and never mutates anything.
type RecommendService struct {
	customers CustomerStore
	venues    VenueStore
	sections  SectionStore
	seats     SeatStore
}

// NewRecommendService constructs a RecommendService and panics if a dependency is nil.
func NewRecommendService(customers CustomerStore, venues VenueStore, sections SectionStore, seats SeatStore) *RecommendService {
	if customers == nil || venues == nil || sections == nil || seats == nil {
		panic("nil store passed to NewRecommendService")
	}
	return &RecommendService{customers: customers, venues: venues, sections: sections, seats: seats}
}

// RecommendSeat walks the venue's sections in descending order of the
// customer's preference weight (missing weights count as 0, ties keep
// insertion order) and returns the first seat available for the event.
// It returns nil when every section is exhausted.
func (s *RecommendService) RecommendSeat(ctx context.Context, customerID, venueID, eventID uint64) (*model.Seat, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, notFound("customer %d", customerID)
		}
		return nil, err
	}
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, notFound("venue %d", venueID)
		}
		return nil, err
	}

	sections, err := s.sections.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	// ListByVenue yields insertion order, which the stable sort keeps
	// for sections with equal weight.
	sort.SliceStable(sections, func(i, j int) bool {
		return customer.PreferenceFor(sections[i].ID) > customer.PreferenceFor(sections[j].ID)
	})

	for _, sec := range sections {
		seat, err := s.seats.FirstAvailableInSection(ctx, sec.ID, eventID)
		if err != nil {
			return nil, err
		}
		if seat != nil {
			return seat, nil
		}
	}
	return nil, nil
}
