package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/venue-seat-reservation/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// SeatRepo provides methods to work with seats in the database. All
// availability queries share one predicate: a seat is available for an
// event iff no reservations row exists for the (seat, event) pair. The
// queries differ only in how wide the join reaches into the hierarchy.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

const seatColumns = `s.id, s.row_id, s.seat_number, s.created_at, s.updated_at`

// Create inserts a single seat record. On success the seat's ID and
// timestamps are populated.
func (r *SeatRepo) Create(ctx context.Context, s *model.Seat) error {
	const q = `INSERT INTO seats (row_id, seat_number) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.RowID, s.SeatNumber)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const sel = `SELECT ` + seatColumns + ` FROM seats s WHERE s.id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).
		Scan(&s.ID, &s.RowID, &s.SeatNumber, &s.CreatedAt, &s.UpdatedAt)
}

// CreateBulk inserts multiple seats in a single statement.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seats (row_id, seat_number) VALUES `
	args := make([]interface{}, 0, len(seats)*2)
	for i, seat := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, seat.RowID, seat.SeatNumber)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetByID retrieves a seat by its id.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = `SELECT ` + seatColumns + ` FROM seats s WHERE s.id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.RowID, &s.SeatNumber, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// NumberExists reports whether a seat with the given number already
// exists in the row.
func (r *SeatRepo) NumberExists(ctx context.Context, rowID uint64, seatNumber uint32) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM seats WHERE row_id = ? AND seat_number = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, rowID, seatNumber).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByRow retrieves all seats of a row in insertion order.
func (r *SeatRepo) ListByRow(ctx context.Context, rowID uint64) ([]model.Seat, error) {
	const q = `SELECT ` + seatColumns + ` FROM seats s WHERE s.row_id = ? ORDER BY s.id`
	return r.list(ctx, q, rowID)
}

// AvailableByRow returns the seats of a row that have no reservation for
// the given event, in insertion order. Insertion order is what the
// closest-seat tie-break is defined on.
func (r *SeatRepo) AvailableByRow(ctx context.Context, rowID, eventID uint64) ([]model.Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM seats s
	           LEFT JOIN reservations res ON res.seat_id = s.id AND res.event_id = ?
	           WHERE s.row_id = ? AND res.id IS NULL
	           ORDER BY s.id`
	return r.list(ctx, q, eventID, rowID)
}

// AvailableBySection flattens a section's rows and returns every seat
// with no reservation for the given event, ordered by row then seat
// number.
func (r *SeatRepo) AvailableBySection(ctx context.Context, sectionID, eventID uint64) ([]model.Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM seats s
	           JOIN venue_rows vr ON vr.id = s.row_id
	           LEFT JOIN reservations res ON res.seat_id = s.id AND res.event_id = ?
	           WHERE vr.section_id = ? AND res.id IS NULL
	           ORDER BY vr.id, s.seat_number`
	return r.list(ctx, q, eventID, sectionID)
}

// AvailableByVenue flattens the venue's full Section→Row→Seat subtree
// and returns every seat with no reservation for the given event.
func (r *SeatRepo) AvailableByVenue(ctx context.Context, venueID, eventID uint64) ([]model.Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM seats s
	           JOIN venue_rows vr ON vr.id = s.row_id
	           JOIN sections sec ON sec.id = vr.section_id
	           LEFT JOIN reservations res ON res.seat_id = s.id AND res.event_id = ?
	           WHERE sec.venue_id = ? AND res.id IS NULL
	           ORDER BY sec.id, vr.id, s.seat_number`
	return r.list(ctx, q, eventID, venueID)
}

// FirstAvailableInSection returns the first seat of a section (stored
// order: row, then seat number) with no reservation for the event, or
// nil when the section is sold out for it.
func (r *SeatRepo) FirstAvailableInSection(ctx context.Context, sectionID, eventID uint64) (*model.Seat, error) {
	const q = `SELECT ` + seatColumns + `
	           FROM seats s
	           JOIN venue_rows vr ON vr.id = s.row_id
	           LEFT JOIN reservations res ON res.seat_id = s.id AND res.event_id = ?
	           WHERE vr.section_id = ? AND res.id IS NULL
	           ORDER BY vr.id, s.seat_number
	           LIMIT 1`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, eventID, sectionID).
		Scan(&s.ID, &s.RowID, &s.SeatNumber, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SeatRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Seat, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.RowID, &s.SeatNumber, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCascade removes a seat and any reservations bound to it inside
// one transaction. Returns ErrSeatNotFound when the seat does not exist.
func (r *SeatRepo) DeleteCascade(ctx context.Context, seatID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE seat_id = ?`, seatID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE id = ?`, seatID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
