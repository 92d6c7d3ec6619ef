package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

func recommendFixture(prefs map[uint64]int, free map[uint64]*model.Seat) *RecommendService {
	customers := &customerStoreMock{
		getByID: func(_ context.Context, id uint64) (*model.Customer, error) {
			return &model.Customer{ID: id, Name: "Dana", SectionPreferences: prefs}, nil
		},
	}
	venues := &venueStoreMock{
		getByID: func(_ context.Context, id uint64) (*model.Venue, error) {
			return &model.Venue{ID: id, Name: "Town Hall", HasSeats: true}, nil
		},
	}
	sections := &sectionStoreMock{
		listByVenue: func(_ context.Context, _ uint64) ([]model.Section, error) {
			return []model.Section{
				{ID: 10, Name: "Stalls"},
				{ID: 11, Name: "Balcony"},
				{ID: 12, Name: "Gallery"},
			}, nil
		},
	}
	seats := &seatStoreMock{
		firstAvailableInSection: func(_ context.Context, sectionID, _ uint64) (*model.Seat, error) {
			return free[sectionID], nil
		},
	}
	return NewRecommendService(customers, venues, sections, seats)
}

func TestRecommendSeat(t *testing.T) {
	t.Run("preferred section wins when it has a free seat", func(t *testing.T) {
		svc := recommendFixture(
			map[uint64]int{11: 5, 10: 2},
			map[uint64]*model.Seat{
				10: {ID: 1, SeatNumber: 1},
				11: {ID: 2, SeatNumber: 8},
			},
		)

		seat, err := svc.RecommendSeat(context.Background(), 9, 1, 7)
		require.NoError(t, err)
		require.NotNil(t, seat)
		assert.Equal(t, uint64(2), seat.ID)
	})

	t.Run("falls through an exhausted preferred section", func(t *testing.T) {
		// Weight 5 on Balcony, weight 3 on Stalls; Balcony is sold out
		// so the next preference supplies the seat.
		svc := recommendFixture(
			map[uint64]int{11: 5, 10: 3},
			map[uint64]*model.Seat{
				10: {ID: 1, SeatNumber: 1},
			},
		)

		seat, err := svc.RecommendSeat(context.Background(), 9, 1, 7)
		require.NoError(t, err)
		require.NotNil(t, seat)
		assert.Equal(t, uint64(1), seat.ID)
	})

	t.Run("no preferences keeps insertion order", func(t *testing.T) {
		svc := recommendFixture(
			nil,
			map[uint64]*model.Seat{
				11: {ID: 2, SeatNumber: 8},
				12: {ID: 3, SeatNumber: 4},
			},
		)

		seat, err := svc.RecommendSeat(context.Background(), 9, 1, 7)
		require.NoError(t, err)
		require.NotNil(t, seat)
		assert.Equal(t, uint64(2), seat.ID)
	})

	t.Run("nil when every section is sold out", func(t *testing.T) {
		svc := recommendFixture(map[uint64]int{10: 5}, nil)

		seat, err := svc.RecommendSeat(context.Background(), 9, 1, 7)
		require.NoError(t, err)
		assert.Nil(t, seat)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		customers := &customerStoreMock{
			getByID: func(_ context.Context, _ uint64) (*model.Customer, error) {
				return nil, repository.ErrCustomerNotFound
			},
		}
		svc := NewRecommendService(customers, &venueStoreMock{}, &sectionStoreMock{}, &seatStoreMock{})

		_, err := svc.RecommendSeat(context.Background(), 99, 1, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown venue is not found", func(t *testing.T) {
		customers := &customerStoreMock{
			getByID: func(_ context.Context, id uint64) (*model.Customer, error) {
				return &model.Customer{ID: id}, nil
			},
		}
		venues := &venueStoreMock{
			getByID: func(_ context.Context, _ uint64) (*model.Venue, error) {
				return nil, repository.ErrVenueNotFound
			},
		}
		svc := NewRecommendService(customers, venues, &sectionStoreMock{}, &seatStoreMock{})

		_, err := svc.RecommendSeat(context.Background(), 9, 99, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
