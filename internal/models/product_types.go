package models

import "github.com/shopspring/decimal"

// Product is the catalog product returned by the commerce API.
// Variants are immutable snapshots; the storefront never mutates them.
type Product struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	SKU         *string `json:"sku,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`

	// --- Pricing & Stock ---
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compareAtPrice,omitempty"`
	Currency       string           `json:"currency"`
	StockQuantity  int              `json:"stock"`

	// --- Configuration ---
	IsVariable bool   `json:"isVariable"`
	Status     string `json:"status"`

	// --- Media & Content ---
	Images          []string          `json:"images"`
	VariationImages map[string]string `json:"variationImages,omitempty"`

	Categories []Category       `json:"categories,omitempty"`
	Variants   []ProductVariant `json:"variants,omitempty"`
}

// ProductVariantOption is one (attribute name, attribute value) pair of a variant.
type ProductVariantOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariant is a purchasable SKU of a product.
type ProductVariant struct {
	ID             string                 `json:"id"`
	ProductID      string                 `json:"productId"`
	SKU            *string                `json:"sku,omitempty"`
	Price          decimal.Decimal        `json:"price"`
	CompareAtPrice *decimal.Decimal       `json:"compareAtPrice,omitempty"`
	StockQuantity  int                    `json:"stock"`
	Options        []ProductVariantOption `json:"options"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	PerPage  int       `json:"perPage"`
	Total    int       `json:"total"`
}
