package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/ledger"
	"github.com/rxbryan/galoy/internal/onchain"
)

// LedgerReader supplies the confirmed transaction stream, newest first
type LedgerReader interface {
	ListByWalletIDs(ctx context.Context, walletIDs []uuid.UUID) ([]*ledger.Transaction, error)
}

// AddressIndex maps each wallet to the receiving addresses ever issued to it
type AddressIndex interface {
	AddressesByWalletID(ctx context.Context, walletIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

// PendingIncomingSource lists unconfirmed transfers paying to the given
// addresses
type PendingIncomingSource interface {
	ListPendingIncoming(ctx context.Context, addresses []string) ([]*onchain.IncomingTx, error)
}

// PriceSource supplies the current display price of one satoshi, used only to
// value pending transfers
type PriceSource interface {
	DisplayPricePerSat(ctx context.Context) (float64, error)
}
