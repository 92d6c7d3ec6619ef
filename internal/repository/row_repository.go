package repository // repository defines data access for rows

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/venue-seat-reservation/internal/model"
)

// ErrRowNotFound is returned when a row lookup yields no rows.
var ErrRowNotFound = errors.New("row not found")

// RowRepo provides methods to work with seating rows in the database.
type RowRepo struct {
	db *sql.DB
}

// NewRowRepo constructs a RowRepo with the given DB handle.
func NewRowRepo(db *sql.DB) *RowRepo {
	return &RowRepo{db: db}
}

const rowColumns = `id, section_id, capacity, created_at, updated_at`

// Create inserts a row record. On success the row's ID and timestamps
// are populated by reading the record back.
func (r *RowRepo) Create(ctx context.Context, row *model.Row) error {
	const q = `INSERT INTO venue_rows (section_id, capacity) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, row.SectionID, row.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	row.ID = uint64(id)

	const sel = `SELECT ` + rowColumns + ` FROM venue_rows WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, row.ID).
		Scan(&row.ID, &row.SectionID, &row.Capacity, &row.CreatedAt, &row.UpdatedAt)
}

// GetByID retrieves a row by its id.
func (r *RowRepo) GetByID(ctx context.Context, id uint64) (*model.Row, error) {
	const q = `SELECT ` + rowColumns + ` FROM venue_rows WHERE id = ?`
	var row model.Row
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&row.ID, &row.SectionID, &row.Capacity, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRowNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Update persists the capacity of an existing row. Returns
// ErrRowNotFound when the row does not exist.
func (r *RowRepo) Update(ctx context.Context, row *model.Row) error {
	const q = `UPDATE venue_rows SET capacity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, row.Capacity, row.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRowNotFound
	}
	return nil
}

// ListBySection returns all rows of a section in insertion order.
func (r *RowRepo) ListBySection(ctx context.Context, sectionID uint64) ([]model.Row, error) {
	const q = `SELECT ` + rowColumns + ` FROM venue_rows WHERE section_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Row
	for rows.Next() {
		var row model.Row
		if err := rows.Scan(&row.ID, &row.SectionID, &row.Capacity, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MaxSeatNumber returns the highest seat number currently present in a
// row, or 0 when the row has no seats. Bulk seat creation continues
// numbering from this value so UNIQUE(row_id, seat_number) holds.
func (r *RowRepo) MaxSeatNumber(ctx context.Context, rowID uint64) (uint32, error) {
	const q = `SELECT COALESCE(MAX(seat_number), 0) FROM seats WHERE row_id = ?`
	var max uint32
	if err := r.db.QueryRowContext(ctx, q, rowID).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// DeleteCascade removes a row together with its seats and any
// reservations bound to them, inside one transaction. The returned bool
// reports whether the row existed.
func (r *RowRepo) DeleteCascade(ctx context.Context, rowID uint64) (bool, error) {
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
		 WHERE s.row_id = ?`,
		`DELETE FROM seats WHERE row_id = ?`,
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, rowID); err != nil {
			return false, err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM venue_rows WHERE id = ?`, rowID)
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
