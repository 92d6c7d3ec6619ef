package repository // repository defines data access for sections

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/venue-seat-reservation/internal/model"
)

// ErrSectionNotFound is returned when a section lookup yields no rows.
var ErrSectionNotFound = errors.New("section not found")

// SectionRepo provides methods to work with sections in the database.
// Section names are unique per venue through a UNIQUE(venue_id, name)
// index on a case-insensitive collation, but services pre-check with
// NameExists so they can surface a typed error instead of a driver one.
type SectionRepo struct {
	db *sql.DB
}

// NewSectionRepo constructs a SectionRepo with the given DB handle.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

const sectionColumns = `id, venue_id, name, capacity, created_at, updated_at`

// Create inserts a section record. On success the section's ID and
// timestamps are populated by reading the record back.
func (r *SectionRepo) Create(ctx context.Context, s *model.Section) error {
	const q = `INSERT INTO sections (venue_id, name, capacity) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.Name, s.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const sel = `SELECT ` + sectionColumns + ` FROM sections WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).
		Scan(&s.ID, &s.VenueID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID retrieves a section by its id.
func (r *SectionRepo) GetByID(ctx context.Context, id uint64) (*model.Section, error) {
	const q = `SELECT ` + sectionColumns + ` FROM sections WHERE id = ?`
	var s model.Section
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.VenueID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update persists name and capacity for an existing section. Returns
// ErrSectionNotFound when the section does not exist.
func (r *SectionRepo) Update(ctx context.Context, s *model.Section) error {
	const q = `UPDATE sections SET name = ?, capacity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Capacity, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// ListByVenue returns all sections of a venue in insertion order.
func (r *SectionRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.Section, error) {
	const q = `SELECT ` + sectionColumns + ` FROM sections WHERE venue_id = ? ORDER BY id`
	return r.list(ctx, q, venueID)
}

// FindByName returns all sections whose name matches (case-insensitive
// exact match) across every venue.
func (r *SectionRepo) FindByName(ctx context.Context, name string) ([]model.Section, error) {
	const q = `SELECT ` + sectionColumns + ` FROM sections WHERE name = ? ORDER BY id`
	return r.list(ctx, q, name)
}

// NameExists reports whether a section with the given name already exists
// in the venue. The comparison is case-insensitive via the column
// collation.
func (r *SectionRepo) NameExists(ctx context.Context, venueID uint64, name string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM sections WHERE venue_id = ? AND name = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, venueID, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SectionRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Section, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.VenueID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCascade removes a section, its rows and seats, and any
// reservations bound to those seats, inside one transaction. The
// returned bool reports whether the section existed.
func (r *SectionRepo) DeleteCascade(ctx context.Context, sectionID uint64) (bool, error) {
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
		 WHERE vr.section_id = ?`,
		`DELETE s FROM seats s
		 JOIN venue_rows vr ON vr.id = s.row_id
		 WHERE vr.section_id = ?`,
		`DELETE FROM venue_rows WHERE section_id = ?`,
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, sectionID); err != nil {
			return false, err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, sectionID)
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
