package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rxbryan/galoy/internal/ledger"
	"github.com/rxbryan/galoy/internal/wallet"
)

// LedgerRepository implements read access to confirmed ledger transactions
// using PostgreSQL
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new PostgreSQL ledger repository
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const ledgerTxnColumns = `
	id, wallet_id, type, currency, credit, debit,
	sats_fee, cents_fee, display_amount, display_fee,
	usd, fee_usd, fee,
	pending_confirmation, timestamp,
	recipient_wallet_id, username, pubkey, payment_hash, tx_hash, address,
	ln_memo, memo_from_payer
`

// ListByWalletIDs retrieves all transactions touching the given wallets,
// newest first
func (r *LedgerRepository) ListByWalletIDs(ctx context.Context, walletIDs []uuid.UUID) ([]*ledger.Transaction, error) {
	if len(walletIDs) == 0 {
		return []*ledger.Transaction{}, nil
	}

	query := `
		SELECT ` + ledgerTxnColumns + `
		FROM ledger_transactions
		WHERE wallet_id = ANY($1)
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}
	defer rows.Close()

	txns := []*ledger.Transaction{}
	for rows.Next() {
		txn, err := scanLedgerTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger transactions: %w", err)
	}

	return txns, nil
}

// GetByID retrieves a single transaction
func (r *LedgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `
		SELECT ` + ledgerTxnColumns + `
		FROM ledger_transactions
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	txn, err := scanLedgerTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, err
	}

	return txn, nil
}

// Create inserts a confirmed ledger transaction. The history core never
// writes; this exists for the accounting writers and test fixtures.
func (r *LedgerRepository) Create(ctx context.Context, txn *ledger.Transaction) error {
	query := `
		INSERT INTO ledger_transactions (` + ledgerTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`

	_, err := r.pool.Exec(ctx, query,
		txn.ID,
		txn.WalletID,
		string(txn.Type),
		string(txn.Currency),
		txn.Credit,
		txn.Debit,
		txn.SatsFee,
		txn.CentsFee,
		txn.DisplayAmount,
		txn.DisplayFee,
		txn.Usd,
		txn.FeeUsd,
		txn.Fee,
		txn.PendingConfirmation,
		txn.Timestamp,
		txn.RecipientWalletID,
		txn.Username,
		txn.Pubkey,
		txn.PaymentHash,
		txn.TxHash,
		txn.Address,
		txn.LnMemo,
		txn.MemoFromPayer,
	)
	if err != nil {
		return fmt.Errorf("failed to create ledger transaction: %w", err)
	}

	return nil
}

func scanLedgerTransaction(row pgx.Row) (*ledger.Transaction, error) {
	txn := &ledger.Transaction{}
	var txType, currency string

	err := row.Scan(
		&txn.ID,
		&txn.WalletID,
		&txType,
		&currency,
		&txn.Credit,
		&txn.Debit,
		&txn.SatsFee,
		&txn.CentsFee,
		&txn.DisplayAmount,
		&txn.DisplayFee,
		&txn.Usd,
		&txn.FeeUsd,
		&txn.Fee,
		&txn.PendingConfirmation,
		&txn.Timestamp,
		&txn.RecipientWalletID,
		&txn.Username,
		&txn.Pubkey,
		&txn.PaymentHash,
		&txn.TxHash,
		&txn.Address,
		&txn.LnMemo,
		&txn.MemoFromPayer,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan ledger transaction: %w", err)
	}

	txn.Type = ledger.TransactionType(txType)
	txn.Currency = wallet.Currency(currency)
	return txn, nil
}
