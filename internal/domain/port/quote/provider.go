package quote

import (
	"context"

	"papertrader/internal/domain/entity"
)

// Provider is the external quote-lookup capability. Given a symbol it returns
// the current display name and price, or an error.
//
// Possible errors:
// - ErrSymbolNotFound: If the provider does not know the symbol
// - ErrQuoteUnavailable: If the provider fails, times out or returns garbage
type Provider interface {
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}
