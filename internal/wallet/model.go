package wallet

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the settlement currency of a wallet. BTC wallets settle in
// satoshis, USD wallets in cents.
type Currency string

const (
	CurrencyBtc Currency = "BTC"
	CurrencyUsd Currency = "USD"
)

// IsValid checks if the currency is supported
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBtc, CurrencyUsd:
		return true
	}
	return false
}

// Wallet holds the per-wallet metadata needed to value and fee incoming
// on-chain deposits and to render transaction history.
type Wallet struct {
	ID              uuid.UUID `json:"id" db:"id"`
	AccountID       uuid.UUID `json:"account_id" db:"account_id"`
	Currency        Currency  `json:"currency" db:"currency"`
	DepositFeeRatio float64   `json:"deposit_fee_ratio" db:"deposit_fee_ratio"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates wallet fields
func (w *Wallet) Validate() error {
	if w.AccountID == uuid.Nil {
		return ErrInvalidAccountID
	}

	if !w.Currency.IsValid() {
		return ErrInvalidCurrency
	}

	if w.DepositFeeRatio < 0 || w.DepositFeeRatio >= 1 {
		return ErrInvalidDepositFeeRatio
	}

	return nil
}
