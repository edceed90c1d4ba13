package campaign

import "github.com/shopspring/decimal"

// PriceLookup provides the per-cookie funding price.
type PriceLookup interface {
	CookieUnitPrice() decimal.Decimal
}

// StaticPricing is the current pricing collaborator: a fixed unit price.
type StaticPricing struct{}

// cookieUnitPriceUSDC is the fixed price of one cookie.
const cookieUnitPriceUSDC = "0.10"

func (StaticPricing) CookieUnitPrice() decimal.Decimal {
	return decimal.RequireFromString(cookieUnitPriceUSDC)
}

// Cost returns the total funding a sponsor commits to:
// totalCookies × unit price.
func Cost(descriptor *Descriptor, pricing PriceLookup) decimal.Decimal {
	return pricing.CookieUnitPrice().Mul(decimal.NewFromInt(int64(descriptor.TotalCookies)))
}
