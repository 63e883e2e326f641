// Package tronscan implements monitor.Source on top of the TronScan public
// REST API. It exposes one source for native TRX transactions and one source
// per tracked TRC-20 token contract, normalizing the explorer's raw records
// into canonical monitor events.
package tronscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultBaseURL is the public TronScan API endpoint.
	DefaultBaseURL = "https://apilist.tronscanapi.com/api"

	// apiKeyHeader carries the optional TronScan API key.
	apiKeyHeader = "TRON-PRO-API-KEY"

	// defaultPageSize bounds how many records each source fetches per cycle.
	defaultPageSize = 50
)

// ErrUnexpectedStatus indicates that the explorer answered with a non-2xx
// status code.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Client is a thin TronScan REST client shared by all sources.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
}

// config holds internal settings for the TronScan client.
type config struct {
	baseURL  string
	apiKey   string
	pageSize int
}

// Option defines a functional option for configuring the TronScan client.
type Option func(*config)

// NewClient creates a TronScan client that performs requests through the
// given HTTP client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	cfg := config{
		baseURL:  DefaultBaseURL,
		apiKey:   "",
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.baseURL,
		apiKey:     cfg.apiKey,
		pageSize:   cfg.pageSize,
	}
}

// WithBaseURL overrides the TronScan API endpoint. Default: DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithAPIKey attaches a TronScan API key to every request. Optional but
// recommended to avoid aggressive rate limiting.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithPageSize sets how many records each source requests per cycle.
// Default: 50.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// get performs a GET request against the given API path, decoding the JSON
// response body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// fetchTransactions retrieves one page of the wallet's most recent native
// transactions, newest first as supplied upstream.
func (c *Client) fetchTransactions(ctx context.Context, wallet string) ([]TransactionRecord, error) {
	query := url.Values{
		"sort":    []string{"-timestamp"},
		"count":   []string{"true"},
		"limit":   []string{strconv.Itoa(c.pageSize)},
		"start":   []string{"0"},
		"address": []string{wallet},
	}

	var payload transactionListResponse
	if err := c.get(ctx, "/transaction", query, &payload); err != nil {
		return nil, err
	}

	return payload.Data, nil
}

// fetchTokenTransfers retrieves one page of the wallet's most recent TRC-20
// transfers for the given token contract.
func (c *Client) fetchTokenTransfers(ctx context.Context, wallet, contractAddress string) ([]TokenTransferRecord, error) {
	query := url.Values{
		"limit":     []string{strconv.Itoa(c.pageSize)},
		"start":     []string{"0"},
		"trc20Id":   []string{contractAddress},
		"address":   []string{wallet},
		"direction": []string{"0"},
	}

	var payload tokenTransferListResponse
	if err := c.get(ctx, "/token_trc20/transfers-with-status", query, &payload); err != nil {
		return nil, err
	}

	return payload.Data, nil
}
