package models

import "github.com/shopspring/decimal"

// Address is a shipping or billing address entered at checkout.
type Address struct {
	FullName     string  `json:"fullName" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	AddressLine1 string  `json:"addressLine1" binding:"required"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city" binding:"required"`
	State        *string `json:"state,omitempty"`
	Postcode     *string `json:"postcode,omitempty"`
	Country      string  `json:"country" binding:"required,len=2"`
}

// ShippingMethod is a delivery option offered for a cart.
type ShippingMethod struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	EstimatedDays int             `json:"estimatedDays"`
}

// PaymentMethod is a payment option offered for a cart.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // e.g., cod, card, wallet
}

// CheckoutOptions lists what the customer can choose from at checkout.
type CheckoutOptions struct {
	ShippingMethods []ShippingMethod `json:"shippingMethods"`
	PaymentMethods  []PaymentMethod  `json:"paymentMethods"`
}

// CheckoutRequest is the payload sent to place an order.
type CheckoutRequest struct {
	ShippingAddress  Address  `json:"shippingAddress" binding:"required"`
	BillingAddress   *Address `json:"billingAddress,omitempty"`
	ShippingMethodID string   `json:"shippingMethodId" binding:"required"`
	PaymentMethodID  string   `json:"paymentMethodId" binding:"required"`
	Notes            string   `json:"notes,omitempty"`
}

// Order is the order created by the commerce API after checkout.
type Order struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Status      string          `json:"status"` // e.g., pending, processing, shipped
	Currency    string          `json:"currency"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Total       decimal.Decimal `json:"total"`
	PaymentURL  *string         `json:"paymentUrl,omitempty"` // Set when the payment method redirects
}
