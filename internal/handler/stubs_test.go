package handler

import (
	"context"
	"fmt"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

// In-memory store stubs backing the handler tests. Wired together
// through newHierarchyStores they mirror the repository semantics the
// services rely on: cascading deletes walk the whole subtree and the
// availability queries exclude seats with a reservation for the event.
// A stub constructed on its own leaves the cross-references nil and
// answers only entity-level reads and writes.

type venueStoreStub struct {
	venues   map[uint64]*model.Venue
	nextID   uint64
	sections *sectionStoreStub
}

func newVenueStoreStub(seed ...*model.Venue) *venueStoreStub {
	s := &venueStoreStub{venues: map[uint64]*model.Venue{}}
	for _, v := range seed {
		s.venues[v.ID] = v
		if v.ID > s.nextID {
			s.nextID = v.ID
		}
	}
	return s
}

func (s *venueStoreStub) Create(_ context.Context, v *model.Venue) error {
	s.nextID++
	v.ID = s.nextID
	cp := *v
	s.venues[v.ID] = &cp
	return nil
}

func (s *venueStoreStub) GetByID(_ context.Context, id uint64) (*model.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *venueStoreStub) Update(_ context.Context, v *model.Venue) error {
	if _, ok := s.venues[v.ID]; !ok {
		return repository.ErrVenueNotFound
	}
	cp := *v
	s.venues[v.ID] = &cp
	return nil
}

func (s *venueStoreStub) Search(_ context.Context, _ string) ([]model.Venue, error) {
	return nil, nil
}

func (s *venueStoreStub) GetAll(_ context.Context) ([]model.Venue, error) { return nil, nil }

func (s *venueStoreStub) DeleteCascade(ctx context.Context, venueID uint64) (bool, error) {
	if _, ok := s.venues[venueID]; !ok {
		return false, nil
	}
	if s.sections != nil {
		for id, sec := range s.sections.sections {
			if sec.VenueID == venueID {
				if _, err := s.sections.DeleteCascade(ctx, id); err != nil {
					return false, err
				}
			}
		}
	}
	delete(s.venues, venueID)
	return true, nil
}

type sectionStoreStub struct {
	sections map[uint64]*model.Section
	nextID   uint64
	rows     *rowStoreStub
}

func newSectionStoreStub() *sectionStoreStub {
	return &sectionStoreStub{sections: map[uint64]*model.Section{}}
}

func (s *sectionStoreStub) Create(_ context.Context, sec *model.Section) error {
	s.nextID++
	sec.ID = s.nextID
	cp := *sec
	s.sections[sec.ID] = &cp
	return nil
}

func (s *sectionStoreStub) GetByID(_ context.Context, id uint64) (*model.Section, error) {
	sec, ok := s.sections[id]
	if !ok {
		return nil, repository.ErrSectionNotFound
	}
	cp := *sec
	return &cp, nil
}

func (s *sectionStoreStub) Update(_ context.Context, sec *model.Section) error {
	if _, ok := s.sections[sec.ID]; !ok {
		return repository.ErrSectionNotFound
	}
	cp := *sec
	s.sections[sec.ID] = &cp
	return nil
}

func (s *sectionStoreStub) ListByVenue(_ context.Context, venueID uint64) ([]model.Section, error) {
	var out []model.Section
	for id := uint64(1); id <= s.nextID; id++ {
		if sec, ok := s.sections[id]; ok && sec.VenueID == venueID {
			out = append(out, *sec)
		}
	}
	return out, nil
}

func (s *sectionStoreStub) FindByName(_ context.Context, _ string) ([]model.Section, error) {
	return nil, nil
}

func (s *sectionStoreStub) NameExists(_ context.Context, venueID uint64, name string) (bool, error) {
	for _, sec := range s.sections {
		if sec.VenueID == venueID && sec.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *sectionStoreStub) DeleteCascade(ctx context.Context, sectionID uint64) (bool, error) {
	if _, ok := s.sections[sectionID]; !ok {
		return false, nil
	}
	if s.rows != nil {
		for id, row := range s.rows.rows {
			if row.SectionID == sectionID {
				if _, err := s.rows.DeleteCascade(ctx, id); err != nil {
					return false, err
				}
			}
		}
	}
	delete(s.sections, sectionID)
	return true, nil
}

type rowStoreStub struct {
	rows   map[uint64]*model.Row
	nextID uint64
	seats  *seatStoreStub
}

func newRowStoreStub(seed ...*model.Row) *rowStoreStub {
	s := &rowStoreStub{rows: map[uint64]*model.Row{}}
	for _, row := range seed {
		s.rows[row.ID] = row
		if row.ID > s.nextID {
			s.nextID = row.ID
		}
	}
	return s
}

func (s *rowStoreStub) Create(_ context.Context, row *model.Row) error {
	s.nextID++
	row.ID = s.nextID
	cp := *row
	s.rows[row.ID] = &cp
	return nil
}

func (s *rowStoreStub) GetByID(_ context.Context, id uint64) (*model.Row, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrRowNotFound
	}
	cp := *row
	return &cp, nil
}

func (s *rowStoreStub) Update(_ context.Context, row *model.Row) error {
	if _, ok := s.rows[row.ID]; !ok {
		return repository.ErrRowNotFound
	}
	cp := *row
	s.rows[row.ID] = &cp
	return nil
}

func (s *rowStoreStub) ListBySection(_ context.Context, sectionID uint64) ([]model.Row, error) {
	var out []model.Row
	for id := uint64(1); id <= s.nextID; id++ {
		if row, ok := s.rows[id]; ok && row.SectionID == sectionID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *rowStoreStub) MaxSeatNumber(_ context.Context, rowID uint64) (uint32, error) {
	var max uint32
	if s.seats != nil {
		for _, seat := range s.seats.seats {
			if seat.RowID == rowID && seat.SeatNumber > max {
				max = seat.SeatNumber
			}
		}
	}
	return max, nil
}

func (s *rowStoreStub) DeleteCascade(ctx context.Context, rowID uint64) (bool, error) {
	if _, ok := s.rows[rowID]; !ok {
		return false, nil
	}
	if s.seats != nil {
		for id, seat := range s.seats.seats {
			if seat.RowID == rowID {
				if err := s.seats.DeleteCascade(ctx, id); err != nil {
					return false, err
				}
			}
		}
	}
	delete(s.rows, rowID)
	return true, nil
}

type seatStoreStub struct {
	seats        map[uint64]*model.Seat
	nextID       uint64
	rows         *rowStoreStub
	sections     *sectionStoreStub
	reservations *reservationStoreStub
}

func newSeatStoreStub(seed ...*model.Seat) *seatStoreStub {
	s := &seatStoreStub{seats: map[uint64]*model.Seat{}}
	for _, seat := range seed {
		s.seats[seat.ID] = seat
		if seat.ID > s.nextID {
			s.nextID = seat.ID
		}
	}
	return s
}

func (s *seatStoreStub) Create(_ context.Context, seat *model.Seat) error {
	s.nextID++
	seat.ID = s.nextID
	cp := *seat
	s.seats[seat.ID] = &cp
	return nil
}

func (s *seatStoreStub) CreateBulk(_ context.Context, seats []model.Seat) error {
	for i := range seats {
		s.nextID++
		seats[i].ID = s.nextID
		cp := seats[i]
		s.seats[cp.ID] = &cp
	}
	return nil
}

func (s *seatStoreStub) GetByID(_ context.Context, id uint64) (*model.Seat, error) {
	seat, ok := s.seats[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	cp := *seat
	return &cp, nil
}

func (s *seatStoreStub) NumberExists(_ context.Context, rowID uint64, n uint32) (bool, error) {
	for _, seat := range s.seats {
		if seat.RowID == rowID && seat.SeatNumber == n {
			return true, nil
		}
	}
	return false, nil
}

func (s *seatStoreStub) ListByRow(_ context.Context, rowID uint64) ([]model.Seat, error) {
	var out []model.Seat
	for id := uint64(1); id <= s.nextID; id++ {
		if seat, ok := s.seats[id]; ok && seat.RowID == rowID {
			out = append(out, *seat)
		}
	}
	return out, nil
}

// available reports whether the seat has no reservation for the event.
func (s *seatStoreStub) available(seat *model.Seat, eventID uint64) bool {
	if s.reservations == nil {
		return true
	}
	_, ok := s.reservations.byKey[resKey(seat.ID, eventID)]
	return !ok
}

func (s *seatStoreStub) sectionOf(seat *model.Seat) *model.Section {
	if s.rows == nil || s.sections == nil {
		return nil
	}
	row, ok := s.rows.rows[seat.RowID]
	if !ok {
		return nil
	}
	return s.sections.sections[row.SectionID]
}

func (s *seatStoreStub) AvailableByRow(_ context.Context, rowID, eventID uint64) ([]model.Seat, error) {
	var out []model.Seat
	for id := uint64(1); id <= s.nextID; id++ {
		if seat, ok := s.seats[id]; ok && seat.RowID == rowID && s.available(seat, eventID) {
			out = append(out, *seat)
		}
	}
	return out, nil
}

func (s *seatStoreStub) AvailableBySection(_ context.Context, sectionID, eventID uint64) ([]model.Seat, error) {
	var out []model.Seat
	for id := uint64(1); id <= s.nextID; id++ {
		seat, ok := s.seats[id]
		if !ok || !s.available(seat, eventID) {
			continue
		}
		if sec := s.sectionOf(seat); sec != nil && sec.ID == sectionID {
			out = append(out, *seat)
		}
	}
	return out, nil
}

func (s *seatStoreStub) AvailableByVenue(_ context.Context, venueID, eventID uint64) ([]model.Seat, error) {
	var out []model.Seat
	for id := uint64(1); id <= s.nextID; id++ {
		seat, ok := s.seats[id]
		if !ok || !s.available(seat, eventID) {
			continue
		}
		if sec := s.sectionOf(seat); sec != nil && sec.VenueID == venueID {
			out = append(out, *seat)
		}
	}
	return out, nil
}

func (s *seatStoreStub) FirstAvailableInSection(ctx context.Context, sectionID, eventID uint64) (*model.Seat, error) {
	seats, err := s.AvailableBySection(ctx, sectionID, eventID)
	if err != nil || len(seats) == 0 {
		return nil, err
	}
	return &seats[0], nil
}

func (s *seatStoreStub) DeleteCascade(_ context.Context, seatID uint64) error {
	if _, ok := s.seats[seatID]; !ok {
		return repository.ErrSeatNotFound
	}
	if s.reservations != nil {
		s.reservations.deleteBySeat(seatID)
	}
	delete(s.seats, seatID)
	return nil
}

type reservationStoreStub struct {
	byKey map[string]*model.Reservation
	next  uint64
}

func newReservationStoreStub() *reservationStoreStub {
	return &reservationStoreStub{byKey: map[string]*model.Reservation{}}
}

func resKey(seatID, eventID uint64) string { return fmt.Sprintf("%d/%d", seatID, eventID) }

func (s *reservationStoreStub) Create(_ context.Context, res *model.Reservation) error {
	key := resKey(res.SeatID, res.EventID)
	if _, ok := s.byKey[key]; ok {
		return repository.ErrConflict
	}
	s.next++
	res.ID = s.next
	res.TicketRef = fmt.Sprintf("stub-ticket-%d", s.next)
	cp := *res
	s.byKey[key] = &cp
	return nil
}

func (s *reservationStoreStub) Delete(_ context.Context, seatID, eventID uint64) error {
	key := resKey(seatID, eventID)
	if _, ok := s.byKey[key]; !ok {
		return repository.ErrReservationNotFound
	}
	delete(s.byKey, key)
	return nil
}

func (s *reservationStoreStub) GetBySeatAndEvent(_ context.Context, seatID, eventID uint64) (*model.Reservation, error) {
	res, ok := s.byKey[resKey(seatID, eventID)]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (s *reservationStoreStub) ListBySeat(_ context.Context, seatID uint64) ([]model.Reservation, error) {
	var out []model.Reservation
	for id := uint64(1); id <= s.next; id++ {
		for _, res := range s.byKey {
			if res.ID == id && res.SeatID == seatID {
				out = append(out, *res)
			}
		}
	}
	return out, nil
}

func (s *reservationStoreStub) deleteBySeat(seatID uint64) {
	for key, res := range s.byKey {
		if res.SeatID == seatID {
			delete(s.byKey, key)
		}
	}
}

type eventStoreStub struct {
	events map[uint64]*model.Event
}

func (s *eventStoreStub) GetByID(_ context.Context, id uint64) (*model.Event, error) {
	ev, ok := s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	cp := *ev
	return &cp, nil
}

type customerStoreStub struct {
	customers map[uint64]*model.Customer
}

func (s *customerStoreStub) GetByID(_ context.Context, id uint64) (*model.Customer, error) {
	cu, ok := s.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	cp := *cu
	return &cp, nil
}

// hierarchyStores bundles all stubs cross-wired so that deletes cascade
// through the venue → section → row → seat → reservation chain and the
// availability queries resolve seats through their row and section.
type hierarchyStores struct {
	venues       *venueStoreStub
	sections     *sectionStoreStub
	rows         *rowStoreStub
	seats        *seatStoreStub
	reservations *reservationStoreStub
}

func newHierarchyStores() *hierarchyStores {
	h := &hierarchyStores{
		venues:       newVenueStoreStub(),
		sections:     newSectionStoreStub(),
		rows:         newRowStoreStub(),
		seats:        newSeatStoreStub(),
		reservations: newReservationStoreStub(),
	}
	h.venues.sections = h.sections
	h.sections.rows = h.rows
	h.rows.seats = h.seats
	h.seats.rows = h.rows
	h.seats.sections = h.sections
	h.seats.reservations = h.reservations
	return h
}
