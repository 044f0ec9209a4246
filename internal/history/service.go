package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/wallet"
	"github.com/rxbryan/galoy/pkg/logger"
)

// Service assembles the combined transaction history for a set of wallets:
// pending incoming deposits first, then confirmed ledger entries in the
// repository's order.
type Service struct {
	memoCfg   MemoConfig
	ledger    LedgerReader
	addresses AddressIndex
	pending   PendingIncomingSource
	prices    PriceSource
	logger    *logger.Logger
}

// NewService creates a new history service
func NewService(
	memoCfg MemoConfig,
	ledgerReader LedgerReader,
	addresses AddressIndex,
	pending PendingIncomingSource,
	prices PriceSource,
	log *logger.Logger,
) *Service {
	return &Service{
		memoCfg:   memoCfg,
		ledger:    ledgerReader,
		addresses: addresses,
		pending:   pending,
		prices:    prices,
		logger:    log.WithField("component", "history"),
	}
}

// TransactionsForWallets returns the combined history for the given wallets.
// The caller supplies the wallet metadata snapshot; everything else is
// fetched here as of one point in time.
func (s *Service) TransactionsForWallets(ctx context.Context, wallets []*wallet.Wallet) ([]*WalletTransaction, error) {
	walletIDs := make([]uuid.UUID, 0, len(wallets))
	detailsByWalletID := make(map[uuid.UUID]*wallet.Wallet, len(wallets))
	for _, w := range wallets {
		walletIDs = append(walletIDs, w.ID)
		detailsByWalletID[w.ID] = w
	}

	txns, err := s.ledger.ListByWalletIDs(ctx, walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}
	confirmed := TranslateLedgerTransactions(s.memoCfg, txns)

	addressesByWalletID, err := s.addresses.AddressesByWalletID(ctx, walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet addresses: %w", err)
	}

	allAddresses := []string{}
	for _, addrs := range addressesByWalletID {
		allAddresses = append(allAddresses, addrs...)
	}

	pendingIncoming, err := s.pending.ListPendingIncoming(ctx, allAddresses)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending incoming transfers: %w", err)
	}

	// A price-feed outage degrades pending valuation to a zero rate instead
	// of failing the whole history read.
	price, err := s.prices.DisplayPricePerSat(ctx)
	if err != nil {
		s.logger.Warn("price unavailable, pending transfers valued at zero rate", "error", err)
		price = 0
	}

	pending := FilterPendingIncoming(PendingIncomingArgs{
		PendingIncoming:         pendingIncoming,
		AddressesByWalletID:     addressesByWalletID,
		WalletDetailsByWalletID: detailsByWalletID,
		DisplayCurrencyPerSat:   price,
	})

	return append(pending, confirmed...), nil
}

// TransactionsForWallet returns the combined history for a single wallet
func (s *Service) TransactionsForWallet(ctx context.Context, w *wallet.Wallet) ([]*WalletTransaction, error) {
	return s.TransactionsForWallets(ctx, []*wallet.Wallet{w})
}
