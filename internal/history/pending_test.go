package history_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxbryan/galoy/internal/history"
	"github.com/rxbryan/galoy/internal/onchain"
	"github.com/rxbryan/galoy/internal/wallet"
)

func testWallet(currency wallet.Currency, ratio float64) *wallet.Wallet {
	return &wallet.Wallet{
		ID:              uuid.New(),
		AccountID:       uuid.New(),
		Currency:        currency,
		DepositFeeRatio: ratio,
	}
}

func TestFilterPendingIncoming_SingleMatch(t *testing.T) {
	w := testWallet(wallet.CurrencyBtc, 0.001)
	createdAt := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	result := history.FilterPendingIncoming(history.PendingIncomingArgs{
		PendingIncoming: []*onchain.IncomingTx{
			{
				TxHash:    "h1",
				Outs:      []onchain.TxOut{{Sats: 20000, Address: "addrX"}},
				CreatedAt: createdAt,
			},
		},
		AddressesByWalletID:     map[uuid.UUID][]string{w.ID: {"addrX", "addrY"}},
		WalletDetailsByWalletID: map[uuid.UUID]*wallet.Wallet{w.ID: w},
		DisplayCurrencyPerSat:   0.00045,
	})

	require.Len(t, result, 1)
	txn := result[0]
	assert.Equal(t, "h1", txn.ID)
	assert.Equal(t, w.ID, txn.WalletID)
	assert.Equal(t, int64(19980), txn.SettlementAmount)
	assert.Equal(t, int64(20), txn.SettlementFee)
	assert.Equal(t, wallet.CurrencyBtc, txn.SettlementCurrency)
	assert.Equal(t, 0.00045, txn.DisplayCurrencyPerSettlementCurrencyUnit)
	assert.Equal(t, history.TxStatusPending, txn.Status)
	assert.Nil(t, txn.Memo)
	assert.Equal(t, createdAt, txn.CreatedAt)

	initiation, ok := txn.InitiationVia.(history.InitiatedViaOnChain)
	require.True(t, ok)
	assert.Equal(t, "addrX", initiation.Address)

	settlement, ok := txn.SettlementVia.(history.SettledViaOnChain)
	require.True(t, ok)
	assert.Equal(t, "h1", settlement.TransactionHash)
}

func TestFilterPendingIncoming_SharedAddressYieldsOneEntryPerWallet(t *testing.T) {
	w1 := testWallet(wallet.CurrencyBtc, 0.001)
	w2 := testWallet(wallet.CurrencyBtc, 0.01)

	result := history.FilterPendingIncoming(history.PendingIncomingArgs{
		PendingIncoming: []*onchain.IncomingTx{
			{TxHash: "h1", Outs: []onchain.TxOut{{Sats: 20000, Address: "shared"}}, CreatedAt: time.Now()},
		},
		AddressesByWalletID: map[uuid.UUID][]string{
			w1.ID: {"shared"},
			w2.ID: {"shared"},
		},
		WalletDetailsByWalletID: map[uuid.UUID]*wallet.Wallet{w1.ID: w1, w2.ID: w2},
		DisplayCurrencyPerSat:   0.0005,
	})

	require.Len(t, result, 2)

	byWallet := map[uuid.UUID]*history.WalletTransaction{}
	for _, txn := range result {
		byWallet[txn.WalletID] = txn
	}

	// Each wallet sees its own pending deposit, fee-adjusted by its own ratio
	require.Contains(t, byWallet, w1.ID)
	assert.Equal(t, int64(20), byWallet[w1.ID].SettlementFee)
	assert.Equal(t, int64(19980), byWallet[w1.ID].SettlementAmount)

	require.Contains(t, byWallet, w2.ID)
	assert.Equal(t, int64(200), byWallet[w2.ID].SettlementFee)
	assert.Equal(t, int64(19800), byWallet[w2.ID].SettlementAmount)
}

func TestFilterPendingIncoming_MultipleOutputs(t *testing.T) {
	w := testWallet(wallet.CurrencyBtc, 0)

	result := history.FilterPendingIncoming(history.PendingIncomingArgs{
		PendingIncoming: []*onchain.IncomingTx{
			{
				TxHash: "h1",
				Outs: []onchain.TxOut{
					{Sats: 1000, Address: "a1"},
					{Sats: 2000, Address: "a2"},
					{Sats: 3000, Address: "unrelated"},
				},
				CreatedAt: time.Now(),
			},
		},
		AddressesByWalletID:     map[uuid.UUID][]string{w.ID: {"a1", "a2"}},
		WalletDetailsByWalletID: map[uuid.UUID]*wallet.Wallet{w.ID: w},
		DisplayCurrencyPerSat:   0.0005,
	})

	require.Len(t, result, 2)
	assert.Equal(t, int64(1000), result[0].SettlementAmount)
	assert.Equal(t, int64(2000), result[1].SettlementAmount)
}

func TestFilterPendingIncoming_NoMatches(t *testing.T) {
	w := testWallet(wallet.CurrencyBtc, 0.001)

	result := history.FilterPendingIncoming(history.PendingIncomingArgs{
		PendingIncoming: []*onchain.IncomingTx{
			{TxHash: "h1", Outs: []onchain.TxOut{{Sats: 500, Address: "other"}}, CreatedAt: time.Now()},
		},
		AddressesByWalletID:     map[uuid.UUID][]string{w.ID: {"mine"}},
		WalletDetailsByWalletID: map[uuid.UUID]*wallet.Wallet{w.ID: w},
		DisplayCurrencyPerSat:   0.0005,
	})

	assert.Empty(t, result)
}

func TestFilterPendingIncoming_SkipsEmptyAddresses(t *testing.T) {
	w := testWallet(wallet.CurrencyBtc, 0.001)

	result := history.FilterPendingIncoming(history.PendingIncomingArgs{
		PendingIncoming: []*onchain.IncomingTx{
			{TxHash: "h1", Outs: []onchain.TxOut{{Sats: 500, Address: ""}}, CreatedAt: time.Now()},
		},
		AddressesByWalletID:     map[uuid.UUID][]string{w.ID: {""}},
		WalletDetailsByWalletID: map[uuid.UUID]*wallet.Wallet{w.ID: w},
		DisplayCurrencyPerSat:   0.0005,
	})

	assert.Empty(t, result)
}
