package models

import "github.com/shopspring/decimal"

// Cart is the remote cart owned by the commerce API.
type Cart struct {
	ID        string          `json:"id"`
	Currency  string          `json:"currency"`
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"itemCount"`
}

// CartItem is one line of a cart.
type CartItem struct {
	ID          string                 `json:"id"`
	ProductID   string                 `json:"productId"`
	ProductSlug string                 `json:"productSlug"`
	VariantID   string                 `json:"variantId"`
	Name        string                 `json:"name"`
	Image       string                 `json:"image,omitempty"`
	Options     []ProductVariantOption `json:"options,omitempty"`
	Quantity    int                    `json:"quantity"`
	UnitPrice   decimal.Decimal        `json:"unitPrice"`
	LineTotal   decimal.Decimal        `json:"lineTotal"`
}

// Recalculate derives line totals, subtotal and item count from the items.
func (c *Cart) Recalculate() {
	c.Subtotal = decimal.Zero
	c.ItemCount = 0
	for i := range c.Items {
		item := &c.Items[i]
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		c.Subtotal = c.Subtotal.Add(item.LineTotal)
		c.ItemCount += item.Quantity
	}
}
