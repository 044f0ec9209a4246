package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rxbryan/galoy/pkg/logger"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	headerAPIKey   = "x-cg-demo-api-key"
	requestTimeout = 10 * time.Second
	maxRetries     = 3
)

// Client is an HTTP client for the external BTC price feed
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

// NewClient creates a new price feed client
func NewClient(apiKey string, log *logger.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: defaultBaseURL,
		logger:  log.WithField("component", "pricefeed"),
	}
}

// SetBaseURL overrides the default base URL (useful for testing)
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

type priceResponse struct {
	Bitcoin map[string]float64 `json:"bitcoin"`
}

// BtcUsdPrice fetches the current USD price of one bitcoin
func (c *Client) BtcUsdPrice(ctx context.Context) (float64, error) {
	params := url.Values{}
	params.Set("ids", "bitcoin")
	params.Set("vs_currencies", "usd")

	body, err := c.doRequest(ctx, c.baseURL+"/simple/price?"+params.Encode())
	if err != nil {
		return 0, err
	}

	var parsed priceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse price response: %w", err)
	}

	price, ok := parsed.Bitcoin["usd"]
	if !ok {
		return 0, fmt.Errorf("price feed response missing usd price")
	}
	if price <= 0 {
		return 0, fmt.Errorf("price feed returned non-positive price: %f", price)
	}

	return price, nil
}

// doRequest performs a GET with rate-limit retry. It retries up to maxRetries
// times with exponential backoff (1s, 2s, 4s) on 429 responses.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	backoff := time.Second
	for attempt := 0; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set(headerAPIKey, c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to execute request: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			c.logger.Warn("rate limited, retrying", "attempt", attempt, "backoff_ms", backoff.Milliseconds())
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
				continue
			}
		}

		return nil, fmt.Errorf("price feed error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return nil, fmt.Errorf("price feed rate limit exceeded after retries")
}
