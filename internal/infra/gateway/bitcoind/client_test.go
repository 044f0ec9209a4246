package bitcoind_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxbryan/galoy/internal/infra/gateway/bitcoind"
	"github.com/rxbryan/galoy/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *bitcoind.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return bitcoind.NewClient(server.URL, "rpcuser", "rpcpass", logger.New("test", io.Discard))
}

func TestListUnspent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rpcuser", user)
		assert.Equal(t, "rpcpass", pass)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "listunspent", req["method"])

		w.Write([]byte(`{"result":[
			{"txid":"h1","vout":0,"address":"addr1","amount":0.0002,"confirmations":0},
			{"txid":"h1","vout":1,"address":"addr2","amount":0.0003,"confirmations":0}
		],"error":null}`))
	})

	unspent, err := client.ListUnspent(context.Background(), 0, 0, []string{"addr1", "addr2"})
	require.NoError(t, err)
	require.Len(t, unspent, 2)
	assert.Equal(t, "h1", unspent[0].TxID)
	assert.Equal(t, 0.0002, unspent[0].Amount)
}

func TestListUnspent_RPCError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null,"error":{"code":-32601,"message":"Method not found"}}`))
	})

	_, err := client.ListUnspent(context.Background(), 0, 0, []string{"addr1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Method not found")
}

func TestWatcherAdapter_GroupsOutputsByTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[
			{"txid":"h2","vout":0,"address":"addr3","amount":0.00010000,"confirmations":0},
			{"txid":"h1","vout":0,"address":"addr1","amount":0.00020000,"confirmations":0},
			{"txid":"h1","vout":1,"address":"addr2","amount":0.00030000,"confirmations":0}
		],"error":null}`))
	})

	adapter := bitcoind.NewWatcherAdapter(client)
	txs, err := adapter.ListPendingIncoming(context.Background(), []string{"addr1", "addr2", "addr3"})
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "h1", txs[0].TxHash)
	require.Len(t, txs[0].Outs, 2)
	assert.Equal(t, int64(20000), txs[0].Outs[0].Sats)
	assert.Equal(t, "addr1", txs[0].Outs[0].Address)
	assert.Equal(t, int64(30000), txs[0].Outs[1].Sats)

	assert.Equal(t, "h2", txs[1].TxHash)
	require.Len(t, txs[1].Outs, 1)
	assert.Equal(t, int64(10000), txs[1].Outs[0].Sats)
}

func TestWatcherAdapter_NoAddresses(t *testing.T) {
	adapter := bitcoind.NewWatcherAdapter(nil)
	txs, err := adapter.ListPendingIncoming(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
