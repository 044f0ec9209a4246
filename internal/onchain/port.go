package onchain

import "context"

// Watcher observes the mempool for unconfirmed transactions paying to any of
// the given receiving addresses.
type Watcher interface {
	ListPendingIncoming(ctx context.Context, addresses []string) ([]*IncomingTx, error)
}
