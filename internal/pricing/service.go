package pricing

import (
	"context"
	"fmt"

	"github.com/rxbryan/galoy/pkg/logger"
)

// Service serves the current display price with cache-first reads and a
// stale-cache fallback when the upstream feed is down.
type Service struct {
	provider Provider
	cache    Cache
	logger   *logger.Logger
}

// NewService creates a new pricing service
func NewService(provider Provider, cache Cache, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		logger:   log.WithField("component", "pricing"),
	}
}

// DisplayPricePerSat returns the current display price of one satoshi
func (s *Service) DisplayPricePerSat(ctx context.Context) (float64, error) {
	price, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("price cache read failed", "error", err)
	} else if ok {
		return price, nil
	}

	price, err = s.provider.DisplayPricePerSat(ctx)
	if err != nil {
		if stale, ok, serr := s.cache.GetStale(ctx); serr == nil && ok {
			s.logger.Warn("price feed unavailable, serving stale price", "error", err)
			return stale, nil
		}
		return 0, fmt.Errorf("failed to fetch display price: %w", err)
	}

	if err := s.cache.Set(ctx, price); err != nil {
		s.logger.Warn("price cache write failed", "error", err)
	}

	return price, nil
}
