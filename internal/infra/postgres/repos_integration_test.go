//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxbryan/galoy/internal/account"
	"github.com/rxbryan/galoy/internal/ledger"
	"github.com/rxbryan/galoy/internal/wallet"
	"github.com/rxbryan/galoy/testutil/testdb"
)

var db *testdb.TestDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	db, err = testdb.NewTestDB(ctx)
	if err != nil {
		panic("failed to start test database: " + err.Error())
	}

	code := m.Run()

	db.Close(ctx)
	os.Exit(code)
}

func createTestAccount(t *testing.T, ctx context.Context) *account.Account {
	t.Helper()

	a := &account.Account{
		ID:        uuid.New(),
		Email:     uuid.NewString() + "@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, a.SetPassword("password123"))
	require.NoError(t, NewAccountRepository(db.Pool).Create(ctx, a))
	return a
}

func createTestWallet(t *testing.T, ctx context.Context, accountID uuid.UUID, currency wallet.Currency) *wallet.Wallet {
	t.Helper()

	w := &wallet.Wallet{
		ID:              uuid.New(),
		AccountID:       accountID,
		Currency:        currency,
		DepositFeeRatio: 0.01,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	require.NoError(t, NewWalletRepository(db.Pool).Create(ctx, w))
	return w
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, db.Reset(ctx))

	repo := NewAccountRepository(db.Pool)
	a := createTestAccount(t, ctx)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Email, got.Email)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, a.Email)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := &account.Account{
			ID:        uuid.New(),
			Email:     a.Email,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		require.NoError(t, dup.SetPassword("password123"))
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, account.ErrAccountAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	})

	t.Run("update last login", func(t *testing.T) {
		now := time.Now().UTC()
		a.LastLoginAt = &now
		require.NoError(t, repo.Update(ctx, a))

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastLoginAt)
	})
}

func TestWalletRepository(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, db.Reset(ctx))

	repo := NewWalletRepository(db.Pool)
	a := createTestAccount(t, ctx)
	btc := createTestWallet(t, ctx, a.ID, wallet.CurrencyBtc)
	usd := createTestWallet(t, ctx, a.ID, wallet.CurrencyUsd)

	t.Run("list by account", func(t *testing.T) {
		wallets, err := repo.ListByAccountID(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, wallets, 2)
	})

	t.Run("addresses by wallet", func(t *testing.T) {
		require.NoError(t, repo.AddAddress(ctx, btc.ID, "bc1qfirst"))
		require.NoError(t, repo.AddAddress(ctx, btc.ID, "bc1qsecond"))
		// Duplicate inserts are ignored
		require.NoError(t, repo.AddAddress(ctx, btc.ID, "bc1qfirst"))

		addrs, err := repo.AddressesByWalletID(ctx, []uuid.UUID{btc.ID, usd.ID})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bc1qfirst", "bc1qsecond"}, addrs[btc.ID])
		assert.Empty(t, addrs[usd.ID])
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
	})
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, db.Reset(ctx))

	repo := NewLedgerRepository(db.Pool)
	a := createTestAccount(t, ctx)
	btc := createTestWallet(t, ctx, a.ID, wallet.CurrencyBtc)
	other := createTestWallet(t, ctx, a.ID, wallet.CurrencyUsd)

	base := time.Now().UTC().Truncate(time.Microsecond)
	hash := "txhash1"
	addr := "bc1qreceive"
	memo := "coffee"

	older := &ledger.Transaction{
		ID:            uuid.New(),
		WalletID:      btc.ID,
		Type:          ledger.TypeOnchainReceipt,
		Currency:      wallet.CurrencyBtc,
		Credit:        50000,
		Timestamp:     base.Add(-time.Hour),
		TxHash:        &hash,
		Address:       &addr,
		MemoFromPayer: &memo,
	}
	newer := &ledger.Transaction{
		ID:        uuid.New(),
		WalletID:  btc.ID,
		Type:      ledger.TypePayment,
		Currency:  wallet.CurrencyBtc,
		Debit:     1000,
		SatsFee:   10,
		Timestamp: base,
	}
	unrelated := &ledger.Transaction{
		ID:        uuid.New(),
		WalletID:  other.ID,
		Type:      ledger.TypeIntraLedger,
		Currency:  wallet.CurrencyUsd,
		Credit:    500,
		Timestamp: base,
	}

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, unrelated))

	t.Run("list newest first", func(t *testing.T) {
		txns, err := repo.ListByWalletIDs(ctx, []uuid.UUID{btc.ID})
		require.NoError(t, err)
		require.Len(t, txns, 2)
		assert.Equal(t, newer.ID, txns[0].ID)
		assert.Equal(t, older.ID, txns[1].ID)
	})

	t.Run("list across wallets", func(t *testing.T) {
		txns, err := repo.ListByWalletIDs(ctx, []uuid.UUID{btc.ID, other.ID})
		require.NoError(t, err)
		assert.Len(t, txns, 3)
	})

	t.Run("optional fields round-trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		require.NotNil(t, got.TxHash)
		assert.Equal(t, hash, *got.TxHash)
		require.NotNil(t, got.MemoFromPayer)
		assert.Equal(t, memo, *got.MemoFromPayer)
		assert.Nil(t, got.Usd)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ledger.ErrTransactionNotFound)
	})

	t.Run("empty wallet set", func(t *testing.T) {
		txns, err := repo.ListByWalletIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}
