package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/wallet"
)

// TxStatus is the lifecycle state exposed on a wallet transaction. The view
// layer recognizes exactly these two states; richer lifecycles live in the
// ledger itself.
type TxStatus string

const (
	TxStatusPending TxStatus = "pending"
	TxStatusSuccess TxStatus = "success"
)

// NoAddress is the placeholder used when an on-chain entry is missing its
// address.
const NoAddress = "<no-address>"

// InitiationVia describes how a transaction was originated. It is a closed
// set: on-chain address, internal transfer, or Lightning invoice.
type InitiationVia interface {
	isInitiationVia()
}

// InitiatedViaOnChain marks a transaction originated with an on-chain address
type InitiatedViaOnChain struct {
	Address string
}

// InitiatedViaIntraLedger marks a transaction originated as an internal
// transfer between wallets of this system
type InitiatedViaIntraLedger struct {
	CounterPartyWalletID *uuid.UUID
	CounterPartyUsername *string
}

// InitiatedViaLightning marks a transaction originated from a Lightning
// invoice
type InitiatedViaLightning struct {
	PaymentHash *string
	Pubkey      *string
}

func (InitiatedViaOnChain) isInitiationVia()     {}
func (InitiatedViaIntraLedger) isInitiationVia() {}
func (InitiatedViaLightning) isInitiationVia()   {}

// SettlementVia describes how a transaction actually settled, which may
// differ from how it was initiated.
type SettlementVia interface {
	isSettlementVia()
}

// SettledViaOnChain marks settlement by an on-chain transaction
type SettledViaOnChain struct {
	TransactionHash string
}

// SettledViaIntraLedger marks instant internal settlement
type SettledViaIntraLedger struct {
	CounterPartyWalletID *uuid.UUID
	CounterPartyUsername *string
}

// SettledViaLightning marks settlement over the Lightning network.
// RevealedPreImage is resolved downstream by a batched lookup keyed on the
// payment hash; it is never populated here.
type SettledViaLightning struct {
	RevealedPreImage *string
}

func (SettledViaOnChain) isSettlementVia()     {}
func (SettledViaIntraLedger) isSettlementVia() {}
func (SettledViaLightning) isSettlementVia()   {}

// WalletTransaction is the unified presentation view of one movement of
// value: confirmed ledger entries and pending incoming on-chain transfers
// both translate into it. It is derived per query and never persisted.
type WalletTransaction struct {
	ID       string
	WalletID uuid.UUID

	// SettlementAmount is signed: negative means outgoing. Satoshis for BTC
	// wallets, cents otherwise.
	SettlementAmount   int64
	SettlementFee      int64
	SettlementCurrency wallet.Currency

	// DisplayCurrencyPerSettlementCurrencyUnit is 0 when undefined (zero
	// settlement amount), otherwise strictly positive.
	DisplayCurrencyPerSettlementCurrencyUnit float64

	Status    TxStatus
	Memo      *string
	CreatedAt time.Time

	InitiationVia InitiationVia
	SettlementVia SettlementVia
}

// MemoConfig carries the memo-sharing policy data. It is injected so the
// translation stays pure and independently testable.
type MemoConfig struct {
	// SharingSatsThreshold is the minimum credited satoshi amount at which a
	// payer-supplied memo is disclosed on BTC wallets
	SharingSatsThreshold int64

	// SharingCentsThreshold is the equivalent minimum in cents for USD wallets
	SharingCentsThreshold int64

	// OnboardingRewards maps system-generated onboarding memo identifiers to
	// their reward amounts. Memos matching a key are always disclosed.
	OnboardingRewards map[string]int64
}
