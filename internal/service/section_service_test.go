package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
	"github.com/iliyamo/venue-seat-reservation/internal/repository"
)

func TestCreateSection(t *testing.T) {
	venues := &venueStoreMock{
		getByID: func(_ context.Context, id uint64) (*model.Venue, error) {
			return &model.Venue{ID: id, Name: "Town Hall", HasSeats: true}, nil
		},
	}

	t.Run("creates when the name is free", func(t *testing.T) {
		sections := &sectionStoreMock{
			nameExists: func(_ context.Context, venueID uint64, name string) (bool, error) {
				assert.Equal(t, uint64(1), venueID)
				assert.Equal(t, "Balcony", name)
				return false, nil
			},
			create: func(_ context.Context, sec *model.Section) error {
				sec.ID = 10
				return nil
			},
		}
		svc := NewSectionService(sections, venues, &rowStoreMock{}, &seatStoreMock{})

		sec, err := svc.CreateSection(context.Background(), 1, 100, "Balcony")
		require.NoError(t, err)
		assert.Equal(t, uint64(10), sec.ID)
		assert.Equal(t, uint64(1), sec.VenueID)
	})

	t.Run("duplicate name in the venue violates the business rule", func(t *testing.T) {
		sections := &sectionStoreMock{
			nameExists: func(_ context.Context, _ uint64, _ string) (bool, error) {
				return true, nil
			},
		}
		svc := NewSectionService(sections, venues, &rowStoreMock{}, &seatStoreMock{})

		_, err := svc.CreateSection(context.Background(), 1, 100, "Balcony")
		assert.ErrorIs(t, err, ErrBusinessLogic)
	})

	t.Run("missing venue reference violates the business rule", func(t *testing.T) {
		svc := NewSectionService(&sectionStoreMock{}, venues, &rowStoreMock{}, &seatStoreMock{})

		_, err := svc.CreateSection(context.Background(), 0, 100, "Balcony")
		assert.ErrorIs(t, err, ErrBusinessLogic)
	})

	t.Run("unknown venue is not found", func(t *testing.T) {
		missing := &venueStoreMock{
			getByID: func(_ context.Context, _ uint64) (*model.Venue, error) {
				return nil, repository.ErrVenueNotFound
			},
		}
		svc := NewSectionService(&sectionStoreMock{}, missing, &rowStoreMock{}, &seatStoreMock{})

		_, err := svc.CreateSection(context.Background(), 99, 100, "Balcony")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateSection(t *testing.T) {
	t.Run("rename to a taken name violates the business rule", func(t *testing.T) {
		sections := &sectionStoreMock{
			getByID: func(_ context.Context, id uint64) (*model.Section, error) {
				return &model.Section{ID: id, VenueID: 1, Name: "Balcony", Capacity: 100}, nil
			},
			nameExists: func(_ context.Context, _ uint64, name string) (bool, error) {
				return name == "Stalls", nil
			},
		}
		svc := NewSectionService(sections, &venueStoreMock{}, &rowStoreMock{}, &seatStoreMock{})

		_, err := svc.UpdateSection(context.Background(), 10, "Stalls", 120)
		assert.ErrorIs(t, err, ErrBusinessLogic)
	})

	t.Run("case-only rename skips the uniqueness check", func(t *testing.T) {
		sections := &sectionStoreMock{
			getByID: func(_ context.Context, id uint64) (*model.Section, error) {
				return &model.Section{ID: id, VenueID: 1, Name: "Balcony", Capacity: 100}, nil
			},
			nameExists: func(_ context.Context, _ uint64, _ string) (bool, error) {
				t.Fatal("uniqueness must not be checked for a case-only rename")
				return false, nil
			},
			update: func(_ context.Context, _ *model.Section) error { return nil },
		}
		svc := NewSectionService(sections, &venueStoreMock{}, &rowStoreMock{}, &seatStoreMock{})

		sec, err := svc.UpdateSection(context.Background(), 10, "BALCONY", 120)
		require.NoError(t, err)
		assert.Equal(t, "BALCONY", sec.Name)
		assert.Equal(t, uint32(120), sec.Capacity)
	})
}

func TestAddRows(t *testing.T) {
	sections := &sectionStoreMock{
		getByID: func(_ context.Context, id uint64) (*model.Section, error) {
			return &model.Section{ID: id, VenueID: 1, Name: "Stalls"}, nil
		},
	}
	var count int
	rows := &rowStoreMock{
		create: func(_ context.Context, row *model.Row) error {
			count++
			row.ID = uint64(count)
			return nil
		},
	}
	svc := NewSectionService(sections, &venueStoreMock{}, rows, &seatStoreMock{})

	created, err := svc.AddRows(context.Background(), 10, 4, 12)
	require.NoError(t, err)
	require.Len(t, created, 4)
	for _, row := range created {
		assert.Equal(t, uint64(10), row.SectionID)
		assert.Equal(t, uint32(12), row.Capacity)
	}

	_, err = svc.AddRows(context.Background(), 10, 0, 12)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSectionsByName(t *testing.T) {
	sections := &sectionStoreMock{
		findByName: func(_ context.Context, name string) ([]model.Section, error) {
			assert.Equal(t, "Balcony", name)
			return []model.Section{{ID: 10, VenueID: 1}, {ID: 22, VenueID: 3}}, nil
		},
	}
	svc := NewSectionService(sections, &venueStoreMock{}, &rowStoreMock{}, &seatStoreMock{})

	got, err := svc.SectionsByName(context.Background(), "Balcony")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.SectionsByName(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSectionAvailableSeats(t *testing.T) {
	t.Run("unknown section yields empty list", func(t *testing.T) {
		sections := &sectionStoreMock{
			getByID: func(_ context.Context, _ uint64) (*model.Section, error) {
				return nil, repository.ErrSectionNotFound
			},
		}
		svc := NewSectionService(sections, &venueStoreMock{}, &rowStoreMock{}, &seatStoreMock{})

		seats, err := svc.AvailableSeats(context.Background(), 10, 7)
		require.NoError(t, err)
		assert.Empty(t, seats)
	})

	t.Run("delegates to the seat store", func(t *testing.T) {
		sections := &sectionStoreMock{
			getByID: func(_ context.Context, id uint64) (*model.Section, error) {
				return &model.Section{ID: id, VenueID: 1}, nil
			},
		}
		seats := &seatStoreMock{
			availableBySection: func(_ context.Context, sectionID, eventID uint64) ([]model.Seat, error) {
				assert.Equal(t, uint64(10), sectionID)
				assert.Equal(t, uint64(7), eventID)
				return seatsNumbered(20, 1, 2, 3), nil
			},
		}
		svc := NewSectionService(sections, &venueStoreMock{}, &rowStoreMock{}, seats)

		got, err := svc.AvailableSeats(context.Background(), 10, 7)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}
