package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
)

// ErrReservationNotFound is returned when no reservation exists for a
// (seat, event) pair.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides CRUD operations for reservations. A
// reservation is the ticket record binding one seat to one event for a
// customer; the UNIQUE(seat_id, event_id) index is the source of truth
// for seat availability. All timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, seat_id, event_id, customer_id, price_cents, ticket_type, ticket_ref, created_at`

// Create reserves a seat for an event inside a transaction. The seat row
// is locked with SELECT ... FOR UPDATE so two concurrent callers
// serialize on the same seat; the loser then sees the winner's record in
// the existence check and receives ErrConflict. The UNIQUE(seat_id,
// event_id) index backs the same guarantee at the storage level. A fresh
// UUID is issued as the ticket reference.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
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

	// Lock the seat row for the duration of the transaction.
	var seatID uint64
	err = tx.QueryRowContext(ctx, `SELECT id FROM seats WHERE id = ? FOR UPDATE`, res.SeatID).Scan(&seatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSeatNotFound
		}
		return err
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservations WHERE seat_id = ? AND event_id = ?)`,
		res.SeatID, res.EventID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrConflict
	}

	res.TicketRef = uuid.NewString()
	const q = `INSERT INTO reservations (seat_id, event_id, customer_id, price_cents, ticket_type, ticket_ref)
	           VALUES (?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		res.SeatID, res.EventID, res.CustomerID, res.PriceCents, res.TicketType, res.TicketRef)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)

	// Read the record back to populate the creation timestamp.
	const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	err = tx.QueryRowContext(ctx, sel, res.ID).Scan(
		&res.ID, &res.SeatID, &res.EventID, &res.CustomerID,
		&res.PriceCents, &res.TicketType, &res.TicketRef, &res.CreatedAt,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Delete removes the reservation for a (seat, event) pair. Returns
// ErrReservationNotFound when the pair has no reservation.
func (r *ReservationRepo) Delete(ctx context.Context, seatID, eventID uint64) error {
	const q = `DELETE FROM reservations WHERE seat_id = ? AND event_id = ?`
	res, err := r.db.ExecContext(ctx, q, seatID, eventID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// GetBySeatAndEvent returns the reservation for a (seat, event) pair.
func (r *ReservationRepo) GetBySeatAndEvent(ctx context.Context, seatID, eventID uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE seat_id = ? AND event_id = ?`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, seatID, eventID).Scan(
		&res.ID, &res.SeatID, &res.EventID, &res.CustomerID,
		&res.PriceCents, &res.TicketType, &res.TicketRef, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// ListBySeat returns every reservation held on a seat across all events,
// ordered by creation.
func (r *ReservationRepo) ListBySeat(ctx context.Context, seatID uint64) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE seat_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, seatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.SeatID, &res.EventID, &res.CustomerID,
			&res.PriceCents, &res.TicketType, &res.TicketRef, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
