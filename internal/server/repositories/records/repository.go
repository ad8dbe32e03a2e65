// Package records provides storage backends for user profile records:
// a PostgreSQL table and an S3-compatible object store, selected by
// server configuration.
package records

import (
	"context"

	"github.com/jfrjs/publicada/internal/server/models"
)

// Repository defines fetch, save, and delete operations for profile records.
type Repository interface {
	// Get returns the record with the given id, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Record, error)

	// Put creates or overwrites the record (last write wins).
	Put(ctx context.Context, record *models.Record) error

	// Delete removes the record with the given id. Deleting a missing
	// record yields common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
