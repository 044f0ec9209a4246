package pricing_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rxbryan/galoy/internal/pricing"
	"github.com/rxbryan/galoy/pkg/logger"
)

// MockProvider mocks the Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) DisplayPricePerSat(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// MockCache mocks the Cache interface
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context) (float64, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockCache) GetStale(ctx context.Context) (float64, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, price float64) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

func newService(provider *MockProvider, cache *MockCache) *pricing.Service {
	return pricing.NewService(provider, cache, logger.New("test", io.Discard))
}

func TestDisplayPricePerSat_FreshCacheHit(t *testing.T) {
	provider := new(MockProvider)
	cache := new(MockCache)
	cache.On("Get", mock.Anything).Return(0.0005, true, nil)

	price, err := newService(provider, cache).DisplayPricePerSat(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0005, price)
	provider.AssertNotCalled(t, "DisplayPricePerSat")
}

func TestDisplayPricePerSat_CacheMissFetchesAndStores(t *testing.T) {
	provider := new(MockProvider)
	provider.On("DisplayPricePerSat", mock.Anything).Return(0.00061, nil)

	cache := new(MockCache)
	cache.On("Get", mock.Anything).Return(0.0, false, nil)
	cache.On("Set", mock.Anything, 0.00061).Return(nil)

	price, err := newService(provider, cache).DisplayPricePerSat(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.00061, price)
	cache.AssertExpectations(t)
}

func TestDisplayPricePerSat_FeedDownServesStale(t *testing.T) {
	provider := new(MockProvider)
	provider.On("DisplayPricePerSat", mock.Anything).Return(0.0, errors.New("feed down"))

	cache := new(MockCache)
	cache.On("Get", mock.Anything).Return(0.0, false, nil)
	cache.On("GetStale", mock.Anything).Return(0.00042, true, nil)

	price, err := newService(provider, cache).DisplayPricePerSat(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.00042, price)
}

func TestDisplayPricePerSat_FeedDownNoStaleFails(t *testing.T) {
	provider := new(MockProvider)
	provider.On("DisplayPricePerSat", mock.Anything).Return(0.0, errors.New("feed down"))

	cache := new(MockCache)
	cache.On("Get", mock.Anything).Return(0.0, false, nil)
	cache.On("GetStale", mock.Anything).Return(0.0, false, nil)

	_, err := newService(provider, cache).DisplayPricePerSat(context.Background())
	assert.Error(t, err)
}
