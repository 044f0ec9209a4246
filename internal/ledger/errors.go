package ledger

import "errors"

// Ledger errors
var (
	ErrTransactionNotFound = errors.New("ledger transaction not found")
)
