package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"papertrader/internal/domain/entity"
	coreport "papertrader/internal/domain/port/core"
	quoteport "papertrader/internal/domain/port/quote"
)

// cachedQuote is the serialized redis value
type cachedQuote struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// CachedProvider decorates another provider with a redis cache. Cache misses
// and redis failures fall through to the inner provider; only successful
// lookups are cached. Not-found symbols are not cached so that newly listed
// symbols appear without waiting for a TTL.
type CachedProvider struct {
	inner  quoteport.Provider
	rdb    *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewCachedProvider creates a caching decorator with the given TTL
func NewCachedProvider(inner quoteport.Provider, rdb *redis.Client, ttl time.Duration, logger coreport.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProvider{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(symbol string) string {
	return fmt.Sprintf("quote:%s", symbol)
}

// Lookup returns a cached quote when fresh, otherwise asks the inner provider
func (p *CachedProvider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	if raw, err := p.rdb.Get(ctx, cacheKey(symbol)).Result(); err == nil {
		var cached cachedQuote
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			if price, err := decimal.NewFromString(cached.Price); err == nil {
				return &entity.Quote{
					Symbol: cached.Symbol,
					Name:   cached.Name,
					Price:  price,
				}, nil
			}
		}
	} else if err != redis.Nil {
		p.logger.Warn("Quote cache read failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
	}

	q, err := p.inner.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedQuote{
		Symbol: q.Symbol,
		Name:   q.Name,
		Price:  q.Price.String(),
	})
	if err == nil {
		if err := p.rdb.Set(ctx, cacheKey(symbol), payload, p.ttl).Err(); err != nil {
			p.logger.Warn("Quote cache write failed", map[string]any{
				"symbol": symbol,
				"error":  err.Error(),
			})
		}
	}

	return q, nil
}

var _ quoteport.Provider = (*CachedProvider)(nil)
