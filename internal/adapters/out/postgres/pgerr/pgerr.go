// Package pgerr classifies PostgreSQL errors returned through the lib/pq driver.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err, or an error it wraps, is a unique constraint
// violation. Constraint, when non-empty, must match the violated constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
