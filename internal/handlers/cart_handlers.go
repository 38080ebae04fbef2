package handlers

import (
	"net/http"

	"github.com/01moynul/taptosell-storefront/internal/commerce"
	"github.com/01moynul/taptosell-storefront/internal/i18n"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/01moynul/taptosell-storefront/internal/variant"
	"github.com/gin-gonic/gin"
)

//
// --- Cart Handlers (Guest Session) ---
//

const maxLineQuantity = 99

// cartView is the cart payload with prices formatted for the request locale.
func cartView(c *gin.Context, cart models.Cart) gin.H {
	locale := middleware.GetLocale(c).Code
	return gin.H{
		"cart":            cart,
		"displaySubtotal": i18n.FormatPrice(locale, cart.Subtotal, cart.Currency),
	}
}

// ensureCart returns the session cart ID, creating a remote cart when there
// is none. created reports whether a new cart was opened.
func (h *Handlers) ensureCart(c *gin.Context) (cartID string, created bool, err error) {
	if id, ok := middleware.GetCartID(c); ok {
		return id, false, nil
	}
	cartID, err = h.newCart(c)
	return cartID, err == nil, err
}

// newCart opens a remote cart and stores its ID in the session cookie.
func (h *Handlers) newCart(c *gin.Context) (string, error) {
	cart, err := h.api(c).CreateCart(c.Request.Context())
	if err != nil {
		return "", err
	}
	token, err := h.Signer.GenerateCartToken(cart.ID)
	if err != nil {
		return "", err
	}
	middleware.SetCartCookie(c, token, h.Config.IsProduction())
	return cart.ID, nil
}

// AddToCartInput defines the JSON for adding an item to the cart.
// The variant is given either by ID or by a complete option selection;
// both are omitted for products without variants.
type AddToCartInput struct {
	ProductSlug string            `json:"productSlug" binding:"required"`
	VariantID   string            `json:"variantId"`
	Selection   map[string]string `json:"selection"`
	Quantity    int               `json:"quantity" binding:"required,gt=0"`
}

// GetCart is the handler for GET /v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	cartID, ok := middleware.GetCartID(c)
	if !ok {
		// No session yet. Return an empty cart.
		c.JSON(http.StatusOK, cartView(c, models.Cart{Items: []models.CartItem{}}))
		return
	}

	cart, err := h.api(c).GetCart(c.Request.Context(), cartID)
	if err != nil {
		if commerce.IsNotFound(err) {
			// Remote cart expired or was checked out; drop the session.
			middleware.ClearCartCookie(c)
			c.JSON(http.StatusOK, cartView(c, models.Cart{Items: []models.CartItem{}}))
			return
		}
		respondCommerceError(c, err, "Cart not found")
		return
	}
	c.JSON(http.StatusOK, cartView(c, cart))
}

// AddToCart is the handler for POST /v1/cart/items
func (h *Handlers) AddToCart(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Quantity > maxLineQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity too large"})
		return
	}
	productSlug, ok := cleanSlug(input.ProductSlug)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	// 2. --- Resolve the Variant ---
	p, err := h.freshProduct(c, productSlug)
	if err != nil {
		respondCommerceError(c, err, "Product not found")
		return
	}
	v, ok := resolveVariant(p, input)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Select a valid option for every attribute"})
		return
	}

	// 3. --- Check Stock ---
	minStock := h.minStock(c)
	if v.StockQuantity <= minStock {
		c.JSON(http.StatusConflict, gin.H{"error": "This option is out of stock"})
		return
	}
	if v.StockQuantity-minStock < input.Quantity {
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		return
	}

	// 4. --- Add to the Remote Cart ---
	api := h.api(c)
	cartID, created, err := h.ensureCart(c)
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}
	cart, err := api.AddCartItem(c.Request.Context(), cartID, p.ID, v.ID, input.Quantity)
	if err != nil && !created && commerce.IsNotFound(err) {
		// Session points at an expired remote cart. Start over once.
		if cartID, err = h.newCart(c); err == nil {
			cart, err = api.AddCartItem(c.Request.Context(), cartID, p.ID, v.ID, input.Quantity)
		}
	}
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}

	c.JSON(http.StatusCreated, cartView(c, cart))
}

// resolveVariant finds the variant named by the input, by ID or by selection.
// A product without variants resolves to itself, see productUnit.
func resolveVariant(p models.Product, input AddToCartInput) (models.ProductVariant, bool) {
	if len(p.Variants) == 0 {
		if (input.VariantID != "" && input.VariantID != p.ID) || len(variant.SelectionFrom(input.Selection)) > 0 {
			return models.ProductVariant{}, false
		}
		return productUnit(p), true
	}
	if input.VariantID != "" {
		for _, v := range p.Variants {
			if v.ID == input.VariantID {
				return v, true
			}
		}
		return models.ProductVariant{}, false
	}
	return variant.FindVariant(variant.SelectionFrom(input.Selection), p.Variants)
}

// productUnit is the purchasable unit of a product without variants.
// Its ID is empty; cart lines for it carry no variant ID.
func productUnit(p models.Product) models.ProductVariant {
	return models.ProductVariant{
		ProductID:      p.ID,
		SKU:            p.SKU,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		StockQuantity:  p.StockQuantity,
	}
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"` // 0 is treated as a delete
}

// UpdateCartItem is the handler for PATCH /v1/cart/items/:id
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	// 1. --- Get IDs ---
	cartID, ok := middleware.GetCartID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	itemID := c.Param("id")

	// 2. --- Bind & Validate JSON ---
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quantity := *input.Quantity
	if quantity > maxLineQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity too large"})
		return
	}

	// --- Handle Quantity ---
	if quantity == 0 {
		h.deleteCartItem(c, cartID, itemID)
		return
	}

	// 3. --- Find the Line ---
	api := h.api(c)
	cart, err := api.GetCart(c.Request.Context(), cartID)
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}
	var line *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			line = &cart.Items[i]
			break
		}
	}
	if line == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	// 4. --- Check Stock ---
	p, err := h.freshProduct(c, line.ProductSlug)
	if err != nil {
		respondCommerceError(c, err, "Product not found")
		return
	}
	v, ok := resolveVariant(p, AddToCartInput{VariantID: line.VariantID})
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "This option is no longer available"})
		return
	}
	if v.StockQuantity-h.minStock(c) < quantity {
		c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock available for this quantity"})
		return
	}

	// 5. --- Execute Update ---
	cart, err = api.UpdateCartItem(c.Request.Context(), cartID, itemID, quantity)
	if err != nil {
		respondCommerceError(c, err, "Item not found in cart")
		return
	}
	c.JSON(http.StatusOK, cartView(c, cart))
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:id
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	cartID, ok := middleware.GetCartID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	h.deleteCartItem(c, cartID, c.Param("id"))
}

// deleteCartItem is a helper to DRY up the delete logic
func (h *Handlers) deleteCartItem(c *gin.Context, cartID, itemID string) {
	cart, err := h.api(c).RemoveCartItem(c.Request.Context(), cartID, itemID)
	if err != nil {
		respondCommerceError(c, err, "Item not found in cart")
		return
	}
	c.JSON(http.StatusOK, cartView(c, cart))
}
