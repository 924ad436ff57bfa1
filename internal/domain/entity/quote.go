package entity

import "github.com/shopspring/decimal"

// Quote is a point-in-time price and display name for a ticker symbol
type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// PriceCents returns the quote price converted to cents
func (q *Quote) PriceCents() (int64, error) {
	return CentsFromDecimal(q.Price)
}
