// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// services to distinguish between different failure scenarios. For
// example, ErrConflict signals that an operation cannot proceed because
// of existing state (e.g. reserving a seat that already has a
// reservation for the same event).
package repository

import "errors"

// ErrConflict is returned when an insert or delete cannot be performed
// because of conflicting state, such as attempting to reserve a
// (seat, event) pair that already has a reservation. Services translate
// this into their own error kinds.
var ErrConflict = errors.New("conflict")
