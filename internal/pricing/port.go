package pricing

import "context"

// Provider fetches the current display price of one satoshi from an external
// feed
type Provider interface {
	DisplayPricePerSat(ctx context.Context) (float64, error)
}

// Cache stores recently fetched prices with a short freshness window and a
// longer stale fallback window
type Cache interface {
	// Get returns a fresh cached price if one exists
	Get(ctx context.Context) (price float64, ok bool, err error)

	// GetStale returns a price from the stale fallback window
	GetStale(ctx context.Context) (price float64, ok bool, err error)

	// Set stores a freshly fetched price
	Set(ctx context.Context, price float64) error
}
