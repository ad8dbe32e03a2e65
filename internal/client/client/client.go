package client

import (
	"context"

	"github.com/jfrjs/publicada/internal/client/models"
)

// Client is the transport-agnostic contract to the Publicada backend.
type Client interface {
	Close() error

	// SignUp registers a new account and returns the assigned user id.
	SignUp(ctx context.Context, username, password, name, email string) (string, error)

	// Authorize verifies credentials and, on success, stores the token pair
	// for subsequent record calls and returns the provider identity.
	Authorize(ctx context.Context, username, password string) (*models.Identity, error)

	// GetRecord fetches the profile record with the given id.
	GetRecord(ctx context.Context, id string) (*models.Record, error)

	// PutRecord creates or overwrites a profile record.
	PutRecord(ctx context.Context, record *models.Record) error

	// DeleteRecord removes the profile record with the given id.
	DeleteRecord(ctx context.Context, id string) error

	// Ping probes server reachability.
	Ping(ctx context.Context) error

	// Logout discards the stored token pair.
	Logout()
}
