package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
)

// Shipping cost rules. Orders at or above the threshold ship free, as do
// carts containing at least one shipping-saver product; everything else
// pays the flat fee
var (
	FreeShippingThreshold = decimal.NewFromInt(35)
	FlatShippingFee       = decimal.RequireFromString("6.00")
)

// Totals is the priced snapshot of a cart
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// FreeShipping returns true when no shipping is charged
func (t Totals) FreeShipping() bool {
	return t.Shipping.IsZero()
}

// Calculate prices a cart snapshot. It is pure and deterministic: callers
// recompute it from the live cart instead of caching the result
func Calculate(c *cart.Cart) Totals {
	subtotal := decimal.Zero
	for i := range c.Items {
		subtotal = subtotal.Add(c.Items[i].LineTotal())
	}

	shipping := FlatShippingFee
	if c.HasShippingSaver() || subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
