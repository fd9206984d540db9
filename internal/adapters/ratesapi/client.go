// Package ratesapi implements the RateProvider port against the
// exchangerate-api style HTTP endpoint: GET {baseURL}/{apiKey}/latest/{base}
// returning a JSON object with a "conversion_rates" mapping.
package ratesapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 5 * time.Second

// Client is an HTTP client for the upstream rate provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	metrics *metrics.ConversionMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every fetch with the given timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithInsecureSkipVerify disables TLS certificate validation. Keep it off
// unless talking to an endpoint with a broken certificate chain.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithMetrics records fetch outcomes and latency.
func WithMetrics(m *metrics.ConversionMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New constructs a Client for the given provider base URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTable loads the full rate table anchored to baseCurrency. Any transport
// error, non-200 status or malformed body is reported as ErrUpstreamUnavailable.
func (c *Client) FetchTable(ctx context.Context, baseCurrency string) (domain.RateTable, error) {
	start := time.Now()
	table, err := c.fetchTable(ctx, baseCurrency)
	if c.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		c.metrics.RecordProviderFetch(outcome, time.Since(start).Seconds())
	}
	return table, err
}

func (c *Client) fetchTable(ctx context.Context, baseCurrency string) (domain.RateTable, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, baseCurrency)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: http get: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	var payload struct {
		ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding json: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if len(payload.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: response missing conversion_rates", apperrors.ErrUpstreamUnavailable)
	}

	table := make(domain.RateTable, len(payload.ConversionRates))
	for code, rate := range payload.ConversionRates {
		table[code] = rate
	}
	return table, nil
}
