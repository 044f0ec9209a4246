package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/wallet"
)

// TransactionType categorizes a confirmed ledger transaction
type TransactionType string

const (
	TypePayment                  TransactionType = "payment"
	TypeInvoice                  TransactionType = "invoice"
	TypeIntraLedger              TransactionType = "on_us"
	TypeLnIntraLedger            TransactionType = "ln_on_us"
	TypeLnTradeIntraAccount      TransactionType = "ln_self_trade"
	TypeOnchainReceipt           TransactionType = "onchain_receipt"
	TypeOnchainPayment           TransactionType = "onchain_payment"
	TypeOnchainIntraLedger       TransactionType = "onchain_on_us"
	TypeOnChainTradeIntraAccount TransactionType = "onchain_self_trade"
	TypeWalletIdTradeIntraAccount TransactionType = "self_trade"

	// Administrative types, written before per-unit fee fields existed.
	// Amounts on these rows come from the legacy usd/fee_usd/fee columns.
	TypeFee           TransactionType = "fee"
	TypeEscrow        TransactionType = "escrow"
	TypeToColdStorage TransactionType = "to_cold_storage"
	TypeToHotWallet   TransactionType = "to_hot_wallet"
)

var adminTypes = map[TransactionType]struct{}{
	TypeFee:           {},
	TypeEscrow:        {},
	TypeToColdStorage: {},
	TypeToHotWallet:   {},
}

// IsAdmin reports whether the type is an administratively-created legacy type
func (t TransactionType) IsAdmin() bool {
	_, ok := adminTypes[t]
	return ok
}

// Transaction is one immutable accounting entry as stored in the ledger.
// Credit and Debit are unsigned magnitudes in the wallet's base unit
// (satoshis for BTC wallets, cents otherwise).
type Transaction struct {
	ID       uuid.UUID
	WalletID uuid.UUID
	Type     TransactionType
	Currency wallet.Currency

	Credit int64
	Debit  int64

	// Unit-specific fees captured at transaction time
	SatsFee  int64
	CentsFee int64

	// Display-currency snapshot, minor units, captured at transaction time.
	// DisplayAmount is the pre-fee amount.
	DisplayAmount int64
	DisplayFee    int64

	// Legacy columns, populated only on admin-created rows
	Usd    *float64
	FeeUsd *float64
	Fee    *int64

	PendingConfirmation bool
	Timestamp           time.Time

	// Optional counterparty fields
	RecipientWalletID *uuid.UUID
	Username          *string
	Pubkey            *string
	PaymentHash       *string
	TxHash            *string
	Address           *string

	LnMemo        *string
	MemoFromPayer *string
}
