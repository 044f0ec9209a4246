package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines account persistence operations
type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, acct *Account) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Update updates an account
	Update(ctx context.Context, acct *Account) error

	// Exists checks if an account with the given email exists
	Exists(ctx context.Context, email string) (bool, error)
}
