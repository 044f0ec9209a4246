package wallet

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines wallet metadata access
type Repository interface {
	// GetByID retrieves a wallet by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Wallet, error)

	// ListByAccountID retrieves all wallets belonging to an account
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*Wallet, error)
}

// AddressIndex exposes the set of on-chain receiving addresses ever issued to
// each wallet. Used for membership checks only.
type AddressIndex interface {
	AddressesByWalletID(ctx context.Context, walletIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}
