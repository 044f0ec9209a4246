package pricefeed

import (
	"context"
	"fmt"
)

// SatsPerBtc is the number of satoshis in one bitcoin
const SatsPerBtc = 100_000_000

// ProviderAdapter adapts the price feed client to the pricing Provider port
type ProviderAdapter struct {
	client *Client
}

// NewProviderAdapter creates a new provider adapter
func NewProviderAdapter(client *Client) *ProviderAdapter {
	return &ProviderAdapter{client: client}
}

// DisplayPricePerSat returns the current USD price of one satoshi
func (a *ProviderAdapter) DisplayPricePerSat(ctx context.Context) (float64, error) {
	btcPrice, err := a.client.BtcUsdPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch BTC price: %w", err)
	}

	return btcPrice / SatsPerBtc, nil
}
