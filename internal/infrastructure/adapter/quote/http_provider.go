package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
)

// lookupResponse is the quote endpoint's wire format (IEX-style)
type lookupResponse struct {
	Symbol      string      `json:"symbol"`
	CompanyName string      `json:"companyName"`
	LatestPrice json.Number `json:"latestPrice"`
}

// HTTPProvider looks up quotes from an external HTTP endpoint. Every call is
// bounded by the client timeout, so a slow provider propagates a failure
// instead of hanging the request.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  coreport.Logger
}

// NewHTTPProvider creates a quote provider against the given base URL
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Lookup fetches the current {symbol, name, price} for a symbol
func (p *HTTPProvider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	endpoint := fmt.Sprintf("%s/stock/%s/quote?token=%s",
		p.baseURL, url.PathEscape(symbol), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Quote request failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.ErrSymbolNotFound
	case resp.StatusCode != http.StatusOK:
		p.logger.Warn("Quote request returned unexpected status", map[string]any{
			"symbol": symbol,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: status %d", errs.ErrQuoteUnavailable, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}

	price, err := decimal.NewFromString(body.LatestPrice.String())
	if err != nil || !price.IsPositive() {
		return nil, fmt.Errorf("%w: bad price %q", errs.ErrQuoteUnavailable, body.LatestPrice.String())
	}

	return &entity.Quote{
		Symbol: symbol,
		Name:   body.CompanyName,
		Price:  price,
	}, nil
}
