// Package repositories holds the pgx data access layer for the five
// reporting tables and the denormalized report query built on top of them.
package repositories

import (
	"github.com/aarondl/null/v8"
)

// nullTimeArg converts an open-ended history date into a COPY argument.
func nullTimeArg(t null.Time) any {
	if !t.Valid {
		return nil
	}
	return t.Time
}
