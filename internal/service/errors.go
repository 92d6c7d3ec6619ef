// Package service implements the venue seating and reservation managers.
// Services validate input, enforce business rules and delegate storage to
// the repository layer through the interfaces in stores.go. Every failure
// wraps one of three error kinds so handlers can map them to HTTP status
// codes with errors.Is.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped when a referenced ID (venue, section, row, seat,
// event, customer) does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrValidation is wrapped on malformed input: missing required fields,
// non-positive capacity, reserving an already-reserved seat, unreserving
// a seat that is not reserved, duplicate names in bulk creation.
var ErrValidation = errors.New("validation error")

// ErrBusinessLogic is wrapped when a request is structurally invalid for
// the current state: missing parent entity, duplicate section name at
// creation time.
var ErrBusinessLogic = errors.New("business logic error")

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

func businessRule(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrBusinessLogic}, args...)...)
}
