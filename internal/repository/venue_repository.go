package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions

	"github.com/iliyamo/venue-seat-reservation/internal/model"
)

// ErrVenueNotFound is returned when a venue lookup fails.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo provides methods to create, query and delete venues.  It
// embeds a database handle to perform queries and commands.  The
// cascading delete removes the venue's entire subtree (sections, rows,
// seats) together with any reservations bound to the removed seats, all
// inside one transaction.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, name, location, capacity, has_seats, created_at, updated_at`

func scanVenue(row *sql.Row, v *model.Venue) error {
	return row.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.HasSeats, &v.CreatedAt, &v.UpdatedAt)
}

// Create inserts a new venue. On success the venue's ID, timestamps and
// defaults are populated by reading the record back.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, location, capacity, has_seats) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Location, v.Capacity, v.HasSeats)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const sel = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	return scanVenue(r.db.QueryRowContext(ctx, sel, v.ID), v)
}

// GetByID retrieves a venue by its ID.  It returns ErrVenueNotFound when
// no row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Update persists name, location, capacity and has_seats for an existing
// venue.  Returns ErrVenueNotFound when the venue does not exist.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, location = ?, capacity = ?, has_seats = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Location, v.Capacity, v.HasSeats, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Search returns venues whose name or location matches the keyword
// (case-insensitive exact match, which is what MySQL's default ci
// collation gives `=`).
func (r *VenueRepo) Search(ctx context.Context, keyword string) ([]model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE name = ? OR location = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, keyword, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.HasSeats, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAll returns every venue ordered by id.
func (r *VenueRepo) GetAll(ctx context.Context) ([]model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.HasSeats, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCascade removes a venue and its whole subtree in one transaction:
// reservations bound to the venue's seats, then seats, rows, sections and
// finally the venue itself. Either every level is removed or none is.
// The returned bool reports whether the venue existed.
func (r *VenueRepo) DeleteCascade(ctx context.Context, venueID uint64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	steps := []string{
		`DELETE res FROM reservations res
		 JOIN seats s ON s.id = res.seat_id
		 JOIN venue_rows vr ON vr.id = s.row_id
		 JOIN sections sec ON sec.id = vr.section_id
		 WHERE sec.venue_id = ?`,
		`DELETE s FROM seats s
		 JOIN venue_rows vr ON vr.id = s.row_id
		 JOIN sections sec ON sec.id = vr.section_id
		 WHERE sec.venue_id = ?`,
		`DELETE vr FROM venue_rows vr
		 JOIN sections sec ON sec.id = vr.section_id
		 WHERE sec.venue_id = ?`,
		`DELETE FROM sections WHERE venue_id = ?`,
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, venueID); err != nil {
			return false, err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, venueID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		return false, err
	}
	committed = true
	return n > 0, nil
}
