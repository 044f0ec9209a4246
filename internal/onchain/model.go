package onchain

import "time"

// TxOut is one output of an observed on-chain transaction
type TxOut struct {
	Sats    int64
	Address string
}

// IncomingTx is a transaction observed on the chain monitor but not yet
// confirmed and not yet reflected in the ledger.
type IncomingTx struct {
	TxHash    string
	Outs      []TxOut
	CreatedAt time.Time
}
