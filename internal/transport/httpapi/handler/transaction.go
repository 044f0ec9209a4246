package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/history"
	"github.com/rxbryan/galoy/internal/transport/httpapi/middleware"
	"github.com/rxbryan/galoy/internal/wallet"
)

// HistoryServiceInterface defines the history operations needed by TransactionHandler
type HistoryServiceInterface interface {
	TransactionsForWallets(ctx context.Context, wallets []*wallet.Wallet) ([]*history.WalletTransaction, error)
}

// WalletRepositoryInterface defines the wallet lookups needed by TransactionHandler
type WalletRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*wallet.Wallet, error)
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*wallet.Wallet, error)
}

// TransactionHandler serves the wallet transaction history endpoints
type TransactionHandler struct {
	history HistoryServiceInterface
	wallets WalletRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(historyService HistoryServiceInterface, wallets WalletRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{
		history: historyService,
		wallets: wallets,
	}
}

// GetTransactions handles GET /transactions.
// Returns the merged history of all wallets owned by the authenticated
// account: pending incoming on-chain transfers first, then confirmed ledger
// entries newest first. An optional wallet_id query parameter narrows the
// result to a single wallet.
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		respondError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	wallets, err := h.wallets.ListByAccountID(r.Context(), accountID)
	if err != nil {
		respondError(w, "failed to load wallets", http.StatusInternalServerError)
		return
	}

	if rawID := r.URL.Query().Get("wallet_id"); rawID != "" {
		walletID, err := uuid.Parse(rawID)
		if err != nil {
			respondError(w, "invalid wallet_id", http.StatusBadRequest)
			return
		}
		wallets = filterOwnedWallet(wallets, walletID)
		if len(wallets) == 0 {
			respondError(w, "wallet not found", http.StatusNotFound)
			return
		}
	}

	txns, err := h.history.TransactionsForWallets(r.Context(), wallets)
	if err != nil {
		respondError(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	respondJSON(w, toTransactionListResponse(txns), http.StatusOK)
}

// filterOwnedWallet narrows the owned wallet set to the requested ID. Looking
// up inside the owned set, rather than fetching by ID, keeps one account from
// reading another account's history.
func filterOwnedWallet(wallets []*wallet.Wallet, walletID uuid.UUID) []*wallet.Wallet {
	for _, w := range wallets {
		if w.ID == walletID {
			return []*wallet.Wallet{w}
		}
	}
	return nil
}
