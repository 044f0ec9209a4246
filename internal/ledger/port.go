package ledger

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines read access to the confirmed ledger transaction stream.
// Implementations return rows newest first; the translation layer preserves
// that order.
type Repository interface {
	// ListByWalletIDs retrieves all transactions touching the given wallets
	ListByWalletIDs(ctx context.Context, walletIDs []uuid.UUID) ([]*Transaction, error)

	// GetByID retrieves a single transaction
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
}
