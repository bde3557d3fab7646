package supporters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gamenative/gamenative-tui/internal/logger"
	"github.com/google/uuid"
)

const (
	DefaultTable   = "kofi_supporters"
	DefaultTimeout = 15 * time.Second

	selectColumns = "name,total,one_off"
	maxErrorBody  = 512
)

// ClientConfig holds the connection settings for the supporters backend
type ClientConfig struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"api_key"`
	Table   string        `json:"table"`
	Timeout time.Duration `json:"timeout"`
}

// Validate checks that the client can be built from this config
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return NewFetchError(ErrTypeConfiguration, "base URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return NewFetchErrorWithCause(ErrTypeConfiguration, "invalid base URL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewFetchError(ErrTypeConfiguration, fmt.Sprintf("unsupported URL scheme %q", u.Scheme))
	}

	if c.APIKey == "" {
		return NewFetchError(ErrTypeConfiguration, "API key is required")
	}

	if c.Timeout < 0 {
		return NewFetchError(ErrTypeConfiguration, "timeout must be non-negative")
	}

	return nil
}

// Client reads the supporter table through the backend's REST interface.
// It makes a single attempt per call and keeps no state between calls.
type Client struct {
	table   string
	apiKey  string
	baseURL *url.URL
	client  *http.Client
	log     *logger.Logger
}

// NewClient creates a client from config
func NewClient(config *ClientConfig, log *logger.Logger) (*Client, error) {
	if config == nil {
		return nil, NewFetchError(ErrTypeConfiguration, "client config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, _ := url.Parse(config.BaseURL)

	table := config.Table
	if table == "" {
		table = DefaultTable
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		table:   table,
		apiKey:  config.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log.WithComponent("supporters"),
	}, nil
}

// FetchSupporters downloads the complete supporter list
func (c *Client) FetchSupporters(ctx context.Context) ([]Record, error) {
	endpoint := c.baseURL.JoinPath("rest", "v1", c.table)
	query := endpoint.Query()
	query.Set("select", selectColumns)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, NewFetchErrorWithCause(ErrTypeConfiguration, "failed to create request", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	c.log.DebugWithFields("requesting supporter list", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("table", c.table),
	})

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, NewStatusError(resp.StatusCode, string(body))
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, NewFetchErrorWithCause(ErrTypeDecode, "failed to decode supporter list", err)
	}

	c.log.DebugWithFields("supporter list received", []logger.Field{
		logger.F("request_id", requestID),
		logger.Count(len(records)),
		logger.Duration(time.Since(started)),
	})

	return records, nil
}

// classifyTransportError maps client errors onto fetch error types
func classifyTransportError(err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewFetchErrorWithCause(ErrTypeTimeout, "request timed out", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewFetchErrorWithCause(ErrTypeTimeout, "request timed out", err)
	}

	return NewFetchErrorWithCause(ErrTypeNetwork, "request failed", err)
}
