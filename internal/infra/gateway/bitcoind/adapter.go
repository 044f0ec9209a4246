package bitcoind

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rxbryan/galoy/internal/onchain"
)

// WatcherAdapter adapts the bitcoind client to the onchain Watcher port
type WatcherAdapter struct {
	client *Client
}

// NewWatcherAdapter creates a new watcher adapter
func NewWatcherAdapter(client *Client) *WatcherAdapter {
	return &WatcherAdapter{client: client}
}

// ListPendingIncoming lists unconfirmed transactions paying to the given
// addresses, with this node's outputs grouped per transaction.
func (a *WatcherAdapter) ListPendingIncoming(ctx context.Context, addresses []string) ([]*onchain.IncomingTx, error) {
	if len(addresses) == 0 {
		return []*onchain.IncomingTx{}, nil
	}

	unspent, err := a.client.ListUnspent(ctx, 0, 0, addresses)
	if err != nil {
		return nil, err
	}

	// listunspent does not expose mempool entry time; record observation time
	observedAt := time.Now()

	byTxID := map[string]*onchain.IncomingTx{}
	for _, u := range unspent {
		tx, ok := byTxID[u.TxID]
		if !ok {
			tx = &onchain.IncomingTx{TxHash: u.TxID, CreatedAt: observedAt}
			byTxID[u.TxID] = tx
		}
		tx.Outs = append(tx.Outs, onchain.TxOut{
			Sats:    btcToSats(u.Amount),
			Address: u.Address,
		})
	}

	result := make([]*onchain.IncomingTx, 0, len(byTxID))
	for _, tx := range byTxID {
		result = append(result, tx)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TxHash < result[j].TxHash
	})

	return result, nil
}

func btcToSats(btc float64) int64 {
	return decimal.NewFromFloat(btc).Mul(decimal.NewFromInt(100_000_000)).Round(0).IntPart()
}
