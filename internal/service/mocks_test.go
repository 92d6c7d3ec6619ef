package service

import (
	"context"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/queue"
)

// Function-field mocks for the store interfaces. Tests set only the
// fields they need; calling an unset field panics, which surfaces as a
// clear test failure when a service reaches a store it should not.

type venueStoreMock struct {
	create        func(ctx context.Context, v *model.Venue) error
	getByID       func(ctx context.Context, id uint64) (*model.Venue, error)
	update        func(ctx context.Context, v *model.Venue) error
	search        func(ctx context.Context, keyword string) ([]model.Venue, error)
	getAll        func(ctx context.Context) ([]model.Venue, error)
	deleteCascade func(ctx context.Context, venueID uint64) (bool, error)
}

func (m *venueStoreMock) Create(ctx context.Context, v *model.Venue) error { return m.create(ctx, v) }
func (m *venueStoreMock) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	return m.getByID(ctx, id)
}
func (m *venueStoreMock) Update(ctx context.Context, v *model.Venue) error { return m.update(ctx, v) }
func (m *venueStoreMock) Search(ctx context.Context, keyword string) ([]model.Venue, error) {
	return m.search(ctx, keyword)
}
func (m *venueStoreMock) GetAll(ctx context.Context) ([]model.Venue, error) { return m.getAll(ctx) }
func (m *venueStoreMock) DeleteCascade(ctx context.Context, venueID uint64) (bool, error) {
	return m.deleteCascade(ctx, venueID)
}

type sectionStoreMock struct {
	create        func(ctx context.Context, s *model.Section) error
	getByID       func(ctx context.Context, id uint64) (*model.Section, error)
	update        func(ctx context.Context, s *model.Section) error
	listByVenue   func(ctx context.Context, venueID uint64) ([]model.Section, error)
	findByName    func(ctx context.Context, name string) ([]model.Section, error)
	nameExists    func(ctx context.Context, venueID uint64, name string) (bool, error)
	deleteCascade func(ctx context.Context, sectionID uint64) (bool, error)
}

func (m *sectionStoreMock) Create(ctx context.Context, s *model.Section) error {
	return m.create(ctx, s)
}
func (m *sectionStoreMock) GetByID(ctx context.Context, id uint64) (*model.Section, error) {
	return m.getByID(ctx, id)
}
func (m *sectionStoreMock) Update(ctx context.Context, s *model.Section) error {
	return m.update(ctx, s)
}
func (m *sectionStoreMock) ListByVenue(ctx context.Context, venueID uint64) ([]model.Section, error) {
	return m.listByVenue(ctx, venueID)
}
func (m *sectionStoreMock) FindByName(ctx context.Context, name string) ([]model.Section, error) {
	return m.findByName(ctx, name)
}
func (m *sectionStoreMock) NameExists(ctx context.Context, venueID uint64, name string) (bool, error) {
	return m.nameExists(ctx, venueID, name)
}
func (m *sectionStoreMock) DeleteCascade(ctx context.Context, sectionID uint64) (bool, error) {
	return m.deleteCascade(ctx, sectionID)
}

type rowStoreMock struct {
	create        func(ctx context.Context, row *model.Row) error
	getByID       func(ctx context.Context, id uint64) (*model.Row, error)
	update        func(ctx context.Context, row *model.Row) error
	listBySection func(ctx context.Context, sectionID uint64) ([]model.Row, error)
	maxSeatNumber func(ctx context.Context, rowID uint64) (uint32, error)
	deleteCascade func(ctx context.Context, rowID uint64) (bool, error)
}

func (m *rowStoreMock) Create(ctx context.Context, row *model.Row) error { return m.create(ctx, row) }
func (m *rowStoreMock) GetByID(ctx context.Context, id uint64) (*model.Row, error) {
	return m.getByID(ctx, id)
}
func (m *rowStoreMock) Update(ctx context.Context, row *model.Row) error { return m.update(ctx, row) }
func (m *rowStoreMock) ListBySection(ctx context.Context, sectionID uint64) ([]model.Row, error) {
	return m.listBySection(ctx, sectionID)
}
func (m *rowStoreMock) MaxSeatNumber(ctx context.Context, rowID uint64) (uint32, error) {
	return m.maxSeatNumber(ctx, rowID)
}
func (m *rowStoreMock) DeleteCascade(ctx context.Context, rowID uint64) (bool, error) {
	return m.deleteCascade(ctx, rowID)
}

type seatStoreMock struct {
	create                  func(ctx context.Context, s *model.Seat) error
	createBulk              func(ctx context.Context, seats []model.Seat) error
	getByID                 func(ctx context.Context, id uint64) (*model.Seat, error)
	numberExists            func(ctx context.Context, rowID uint64, seatNumber uint32) (bool, error)
	listByRow               func(ctx context.Context, rowID uint64) ([]model.Seat, error)
	availableByRow          func(ctx context.Context, rowID, eventID uint64) ([]model.Seat, error)
	availableBySection      func(ctx context.Context, sectionID, eventID uint64) ([]model.Seat, error)
	availableByVenue        func(ctx context.Context, venueID, eventID uint64) ([]model.Seat, error)
	firstAvailableInSection func(ctx context.Context, sectionID, eventID uint64) (*model.Seat, error)
	deleteCascade           func(ctx context.Context, seatID uint64) error
}

func (m *seatStoreMock) Create(ctx context.Context, s *model.Seat) error { return m.create(ctx, s) }
func (m *seatStoreMock) CreateBulk(ctx context.Context, seats []model.Seat) error {
	return m.createBulk(ctx, seats)
}
func (m *seatStoreMock) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	return m.getByID(ctx, id)
}
func (m *seatStoreMock) NumberExists(ctx context.Context, rowID uint64, seatNumber uint32) (bool, error) {
	return m.numberExists(ctx, rowID, seatNumber)
}
func (m *seatStoreMock) ListByRow(ctx context.Context, rowID uint64) ([]model.Seat, error) {
	return m.listByRow(ctx, rowID)
}
func (m *seatStoreMock) AvailableByRow(ctx context.Context, rowID, eventID uint64) ([]model.Seat, error) {
	return m.availableByRow(ctx, rowID, eventID)
}
func (m *seatStoreMock) AvailableBySection(ctx context.Context, sectionID, eventID uint64) ([]model.Seat, error) {
	return m.availableBySection(ctx, sectionID, eventID)
}
func (m *seatStoreMock) AvailableByVenue(ctx context.Context, venueID, eventID uint64) ([]model.Seat, error) {
	return m.availableByVenue(ctx, venueID, eventID)
}
func (m *seatStoreMock) FirstAvailableInSection(ctx context.Context, sectionID, eventID uint64) (*model.Seat, error) {
	return m.firstAvailableInSection(ctx, sectionID, eventID)
}
func (m *seatStoreMock) DeleteCascade(ctx context.Context, seatID uint64) error {
	return m.deleteCascade(ctx, seatID)
}

type reservationStoreMock struct {
	create            func(ctx context.Context, res *model.Reservation) error
	delete            func(ctx context.Context, seatID, eventID uint64) error
	getBySeatAndEvent func(ctx context.Context, seatID, eventID uint64) (*model.Reservation, error)
	listBySeat        func(ctx context.Context, seatID uint64) ([]model.Reservation, error)
}

func (m *reservationStoreMock) Create(ctx context.Context, res *model.Reservation) error {
	return m.create(ctx, res)
}
func (m *reservationStoreMock) Delete(ctx context.Context, seatID, eventID uint64) error {
	return m.delete(ctx, seatID, eventID)
}
func (m *reservationStoreMock) GetBySeatAndEvent(ctx context.Context, seatID, eventID uint64) (*model.Reservation, error) {
	return m.getBySeatAndEvent(ctx, seatID, eventID)
}
func (m *reservationStoreMock) ListBySeat(ctx context.Context, seatID uint64) ([]model.Reservation, error) {
	return m.listBySeat(ctx, seatID)
}

type eventStoreMock struct {
	getByID func(ctx context.Context, id uint64) (*model.Event, error)
}

func (m *eventStoreMock) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	return m.getByID(ctx, id)
}

type customerStoreMock struct {
	getByID func(ctx context.Context, id uint64) (*model.Customer, error)
}

func (m *customerStoreMock) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	return m.getByID(ctx, id)
}

type publisherMock struct {
	ticketIssued []queue.TicketIssuedEvent
	seatReleased []queue.SeatReleasedEvent
	err          error
}

func (m *publisherMock) PublishTicketIssued(ctx context.Context, ev queue.TicketIssuedEvent) error {
	m.ticketIssued = append(m.ticketIssued, ev)
	return m.err
}

func (m *publisherMock) PublishSeatReleased(ctx context.Context, ev queue.SeatReleasedEvent) error {
	m.seatReleased = append(m.seatReleased, ev)
	return m.err
}
