package pricefeed_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxbryan/galoy/internal/infra/gateway/pricefeed"
	"github.com/rxbryan/galoy/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *pricefeed.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := pricefeed.NewClient("test-key", logger.New("test", io.Discard))
	client.SetBaseURL(server.URL)
	return client
}

func TestBtcUsdPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "test-key", r.Header.Get("x-cg-demo-api-key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":45000.50}}`))
	})

	price, err := client.BtcUsdPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45000.50, price)
}

func TestBtcUsdPrice_MissingPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{}}`))
	})

	_, err := client.BtcUsdPrice(context.Background())
	assert.Error(t, err)
}

func TestBtcUsdPrice_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.BtcUsdPrice(context.Background())
	assert.Error(t, err)
}

func TestBtcUsdPrice_RetriesOnRateLimit(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"bitcoin":{"usd":60000}}`))
	})

	price, err := client.BtcUsdPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60000.0, price)
	assert.Equal(t, 2, attempts)
}

func TestProviderAdapter_ConvertsToPerSat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{"usd":50000}}`))
	})

	adapter := pricefeed.NewProviderAdapter(client)
	price, err := adapter.DisplayPricePerSat(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0005, price)
}
