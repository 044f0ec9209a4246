package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rxbryan/galoy/internal/wallet"
)

// WalletRepository implements wallet metadata and address index access using
// PostgreSQL
type WalletRepository struct {
	pool *pgxpool.Pool
}

// NewWalletRepository creates a new PostgreSQL wallet repository
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool}
}

// Create creates a new wallet
func (r *WalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("invalid wallet: %w", err)
	}

	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	query := `
		INSERT INTO wallets (id, account_id, currency, deposit_fee_ratio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		w.ID,
		w.AccountID,
		string(w.Currency),
		w.DepositFeeRatio,
		w.CreatedAt,
		w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	return nil
}

// GetByID retrieves a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*wallet.Wallet, error) {
	query := `
		SELECT id, account_id, currency, deposit_fee_ratio, created_at, updated_at
		FROM wallets
		WHERE id = $1
	`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return w, nil
}

// ListByAccountID retrieves all wallets belonging to an account
func (r *WalletRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*wallet.Wallet, error) {
	query := `
		SELECT id, account_id, currency, deposit_fee_ratio, created_at, updated_at
		FROM wallets
		WHERE account_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	wallets := []*wallet.Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallets: %w", err)
	}

	return wallets, nil
}

// AddAddress records an on-chain receiving address as issued to a wallet
func (r *WalletRepository) AddAddress(ctx context.Context, walletID uuid.UUID, address string) error {
	query := `
		INSERT INTO wallet_onchain_addresses (wallet_id, address, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet_id, address) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, walletID, address, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add wallet address: %w", err)
	}

	return nil
}

// AddressesByWalletID retrieves the receiving addresses ever issued to each
// of the given wallets
func (r *WalletRepository) AddressesByWalletID(ctx context.Context, walletIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(walletIDs))
	if len(walletIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT wallet_id, address
		FROM wallet_onchain_addresses
		WHERE wallet_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var walletID uuid.UUID
		var address string
		if err := rows.Scan(&walletID, &address); err != nil {
			return nil, fmt.Errorf("failed to scan wallet address: %w", err)
		}
		result[walletID] = append(result[walletID], address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallet addresses: %w", err)
	}

	return result, nil
}

func scanWallet(row pgx.Row) (*wallet.Wallet, error) {
	w := &wallet.Wallet{}
	var currency string

	err := row.Scan(
		&w.ID,
		&w.AccountID,
		&currency,
		&w.DepositFeeRatio,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Currency = wallet.Currency(currency)
	return w, nil
}
