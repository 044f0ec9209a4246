package bitcoind

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rxbryan/galoy/pkg/logger"
)

const requestTimeout = 30 * time.Second

// Client is a JSON-RPC client for a bitcoind node
type Client struct {
	rpcURL     string
	rpcUser    string
	rpcPass    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new bitcoind RPC client
func NewClient(rpcURL, rpcUser, rpcPass string, log *logger.Logger) *Client {
	return &Client{
		rpcURL:  rpcURL,
		rpcUser: rpcUser,
		rpcPass: rpcPass,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: log.WithField("component", "bitcoind"),
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Unspent is one unspent output reported by the node
type Unspent struct {
	TxID          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	Address       string  `json:"address"`
	Amount        float64 `json:"amount"` // BTC
	Confirmations int64   `json:"confirmations"`
}

// ListUnspent lists outputs paying to the given addresses with a confirmation
// count in [minConf, maxConf]. minConf=0, maxConf=0 restricts to mempool
// transactions.
func (c *Client) ListUnspent(ctx context.Context, minConf, maxConf int, addresses []string) ([]Unspent, error) {
	raw, err := c.call(ctx, "listunspent", []interface{}{minConf, maxConf, addresses})
	if err != nil {
		return nil, err
	}

	var unspent []Unspent
	if err := json.Unmarshal(raw, &unspent); err != nil {
		return nil, fmt.Errorf("failed to parse listunspent result: %w", err)
	}

	return unspent, nil
}

func (c *Client) call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      "galoy",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal RPC request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.rpcUser, c.rpcPass)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute RPC request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read RPC response: %w", err)
	}

	c.logger.Debug("RPC call", "method", method, "status_code", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bitcoind RPC error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed rpcResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse RPC response: %w", err)
	}

	if parsed.Error != nil {
		return nil, fmt.Errorf("bitcoind RPC error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	return parsed.Result, nil
}
