package service

import (
	"context"
	"errors"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

// RowService owns rows: creation, bulk seat creation, cascading
// deletion, row-scoped availability and the closest-seat recommendation.
type RowService struct {
	rows     RowStore
	sections SectionStore
	seats    SeatStore
}

// NewRowService constructs a RowService and panics if a dependency is nil.
func NewRowService(rows RowStore, sections SectionStore, seats SeatStore) *RowService {
	if rows == nil || sections == nil || seats == nil {
		panic("nil store passed to NewRowService")
	}
	return &RowService{rows: rows, sections: sections, seats: seats}
}

// CreateRow creates a row in a section. The section reference is
// required.
func (s *RowService) CreateRow(ctx context.Context, sectionID uint64, capacity uint32) (*model.Row, error) {
	if sectionID == 0 {
		return nil, businessRule("section is required")
	}
	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return nil, notFound("section %d", sectionID)
		}
		return nil, err
	}
	row := &model.Row{SectionID: sectionID, Capacity: capacity}
	if err := s.rows.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// GetRow returns a row by ID.
func (s *RowService) GetRow(ctx context.Context, rowID uint64) (*model.Row, error) {
	row, err := s.rows.GetByID(ctx, rowID)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, notFound("row %d", rowID)
		}
		return nil, err
	}
	return row, nil
}

// UpdateRow mutates the declared capacity of an existing row.
func (s *RowService) UpdateRow(ctx context.Context, rowID uint64, capacity uint32) (*model.Row, error) {
	row, err := s.GetRow(ctx, rowID)
	if err != nil {
		return nil, err
	}
	row.Capacity = capacity
	if err := s.rows.Update(ctx, row); err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, notFound("row %d", rowID)
		}
		return nil, err
	}
	return row, nil
}

// AddSeats creates count sequentially numbered seats in a row. Numbering
// continues from the highest seat number already present, so repeated
// calls never collide on UNIQUE(row_id, seat_number).
func (s *RowService) AddSeats(ctx context.Context, rowID uint64, count int) ([]model.Seat, error) {
	if count <= 0 {
		return nil, invalid("seat count must be greater than zero")
	}
	if _, err := s.GetRow(ctx, rowID); err != nil {
		return nil, err
	}
	start, err := s.rows.MaxSeatNumber(ctx, rowID)
	if err != nil {
		return nil, err
	}
	seats := make([]model.Seat, 0, count)
	for i := 1; i <= count; i++ {
		seats = append(seats, model.Seat{RowID: rowID, SeatNumber: start + uint32(i)})
	}
	if err := s.seats.CreateBulk(ctx, seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// Seats lists the seats of a row in insertion order.
func (s *RowService) Seats(ctx context.Context, rowID uint64) ([]model.Seat, error) {
	if _, err := s.GetRow(ctx, rowID); err != nil {
		return nil, err
	}
	return s.seats.ListByRow(ctx, rowID)
}

// DeleteRow removes a row and cascades through its seats and their
// reservations.
func (s *RowService) DeleteRow(ctx context.Context, rowID uint64) error {
	found, err := s.rows.DeleteCascade(ctx, rowID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("row %d", rowID)
	}
	return nil
}

// AvailableSeats returns the seats of a row with no reservation for the
// event, in insertion order. A row that does not exist yields an empty
// list.
func (s *RowService) AvailableSeats(ctx context.Context, rowID, eventID uint64) ([]model.Seat, error) {
	if _, err := s.rows.GetByID(ctx, rowID); err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return []model.Seat{}, nil
		}
		return nil, err
	}
	seats, err := s.seats.AvailableByRow(ctx, rowID, eventID)
	if err != nil {
		return nil, err
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return seats, nil
}

// RecommendClosestSeat picks, among the seats of the row that are
// available for the event and whose numbers are not in selected, the
// seat minimizing the minimum absolute distance to any selected seat
// number. Ties go to the seat that comes first in stored order. It
// returns nil when the section or row cannot be resolved, when the row
// does not belong to the section, or when no candidate remains.
func (s *RowService) RecommendClosestSeat(ctx context.Context, sectionID, rowID, eventID uint64, selected []uint32) (*model.Seat, error) {
	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	row, err := s.rows.GetByID(ctx, rowID)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if row.SectionID != sectionID {
		return nil, nil
	}

	available, err := s.seats.AvailableByRow(ctx, rowID, eventID)
	if err != nil {
		return nil, err
	}

	taken := make(map[uint32]struct{}, len(selected))
	for _, n := range selected {
		taken[n] = struct{}{}
	}

	var best *model.Seat
	bestDist := -1
	for i := range available {
		seat := &available[i]
		if _, ok := taken[seat.SeatNumber]; ok {
			continue
		}
		d := minDistance(seat.SeatNumber, selected)
		// Strict < keeps the first seat in stored order on ties.
		if best == nil || d < bestDist {
			best = seat
			bestDist = d
		}
	}
	return best, nil
}

// minDistance returns the smallest absolute difference between n and any
// selected seat number. With no selected seats every candidate is
// equally good.
func minDistance(n uint32, selected []uint32) int {
	min := -1
	for _, sel := range selected {
		d := int(n) - int(sel)
		if d < 0 {
			d = -d
		}
		if min < 0 || d < min {
			min = d
		}
	}
	if min < 0 {
		return 0
	}
	return min
}
