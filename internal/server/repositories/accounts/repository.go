// Package accounts declares the server-side repository contract for
// registered identities.
package accounts

import (
	"context"

	"github.com/jfrjs/publicada/internal/server/models"
)

// Repository defines persistence operations for accounts.
type Repository interface {
	// Create inserts a new account. A duplicate username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) error

	// GetByUsername looks up an account by its unique username.
	// Implementations return common.ErrorNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}
