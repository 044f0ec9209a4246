package wallet

import "errors"

// Wallet errors
var (
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrInvalidWalletID        = errors.New("invalid wallet ID")
	ErrInvalidAccountID       = errors.New("invalid account ID")
	ErrInvalidCurrency        = errors.New("invalid wallet currency")
	ErrInvalidDepositFeeRatio = errors.New("deposit fee ratio must be in [0, 1)")
)
