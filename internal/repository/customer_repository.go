package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-seat-reservation/internal/model"
)

// ErrCustomerNotFound is returned when a customer lookup yields no rows.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepo reads customers and their section preference weights.
// Account management is an external collaborator; the recommendation
// engine consumes only the preference map loaded here.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the given DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// GetByID retrieves a customer together with their section preference
// weights. Sections without a stored weight default to 0 at read time.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	const q = `SELECT id, name, email, created_at FROM customers WHERE id = ?`
	var c model.Customer
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	const prefQ = `SELECT section_id, weight FROM customer_section_preferences WHERE customer_id = ?`
	rows, err := r.db.QueryContext(ctx, prefQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c.SectionPreferences = make(map[uint64]int)
	for rows.Next() {
		var sectionID uint64
		var weight int
		if err := rows.Scan(&sectionID, &weight); err != nil {
			return nil, err
		}
		c.SectionPreferences[sectionID] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}
