package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/ais-aviation/currency-service/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Client fetches market rates from an exchangerate.host style API:
// GET {baseURL}/latest?base=SAR&symbols=USD,EUR returns
// {"base":"SAR","timestamp":1718000000,"rates":{"USD":0.2666,...}}.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates an upstream rate client with a bounded request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ ports.RateSource = (*Client)(nil)

type latestResponse struct {
	Base      string                     `json:"base"`
	Timestamp int64                      `json:"timestamp"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// FetchRates requests quotes for the given target codes. Every failure mode
// (unreachable host, bad status, malformed body, wrong base) is reported as
// ErrUpstreamUnavailable so the caller keeps its last-known-good rates.
func (c *Client) FetchRates(ctx context.Context, targetCodes []string) ([]ports.RateQuote, error) {
	params := url.Values{}
	params.Set("base", domain.BaseCurrencyCode)
	params.Set("symbols", strings.Join(targetCodes, ","))
	if c.apiKey != "" {
		params.Set("access_key", c.apiKey)
	}
	endpoint := c.baseURL + "/latest?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate API returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to parse rate API response: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if body.Base != domain.BaseCurrencyCode {
		return nil, fmt.Errorf("%w: rate API answered for base %q", apperrors.ErrUpstreamUnavailable, body.Base)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("%w: rate API returned no rates", apperrors.ErrUpstreamUnavailable)
	}

	fetchedAt := time.Unix(body.Timestamp, 0).UTC()
	if body.Timestamp == 0 {
		fetchedAt = time.Now().UTC()
	}

	quotes := make([]ports.RateQuote, 0, len(body.Rates))
	for _, code := range targetCodes {
		rate, ok := body.Rates[code]
		if !ok {
			continue
		}
		quotes = append(quotes, ports.RateQuote{
			TargetCurrencyCode: code,
			Rate:               rate,
			Timestamp:          fetchedAt,
		})
	}
	return quotes, nil
}
