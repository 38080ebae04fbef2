package handlers

import (
	"fmt"
	"net/http"

	"github.com/01moynul/taptosell-storefront/internal/i18n"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//
// --- Checkout Handlers (Guest Session) ---
//

// GetCheckout is the handler for GET /v1/checkout
// It returns the cart together with the shipping and payment methods.
func (h *Handlers) GetCheckout(c *gin.Context) {
	cartID, ok := middleware.GetCartID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	api := h.api(c)
	cart, err := api.GetCart(c.Request.Context(), cartID)
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	opts, err := api.GetCheckoutOptions(c.Request.Context(), cartID)
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}

	payload := cartView(c, cart)
	payload["shippingMethods"] = opts.ShippingMethods
	payload["paymentMethods"] = opts.PaymentMethods
	c.JSON(http.StatusOK, payload)
}

// PlaceOrder is the handler for POST /v1/checkout
func (h *Handlers) PlaceOrder(c *gin.Context) {
	// 1. --- Get Cart ID ---
	cartID, ok := middleware.GetCartID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	// 2. --- Bind & Validate JSON ---
	var input models.CheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 3. --- Re-check Stock ---
	api := h.api(c)
	cart, err := api.GetCart(c.Request.Context(), cartID)
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}
	minStock := h.minStock(c)
	for _, item := range cart.Items {
		p, err := h.freshProduct(c, item.ProductSlug)
		if err != nil {
			respondCommerceError(c, err, "Product not found")
			return
		}
		v, ok := resolveVariant(p, AddToCartInput{VariantID: item.VariantID})
		if !ok || v.StockQuantity-minStock < item.Quantity {
			c.JSON(http.StatusConflict, gin.H{
				"error":  fmt.Sprintf("Not enough stock for %s", item.Name),
				"itemId": item.ID,
			})
			return
		}
	}

	// 4. --- Place the Order ---
	// A retried submission reuses the client's key so the order is created once.
	idempotencyKey := c.GetHeader("Idempotency-Key")
	if _, err := uuid.Parse(idempotencyKey); err != nil {
		idempotencyKey = uuid.NewString()
	}
	order, err := api.PlaceOrder(c.Request.Context(), cartID, input, idempotencyKey)
	if err != nil {
		respondCommerceError(c, err, "Cart not found")
		return
	}

	// 5. --- End the Cart Session ---
	middleware.ClearCartCookie(c)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order placed successfully",
		"order":        order,
		"displayTotal": i18n.FormatPrice(middleware.GetLocale(c).Code, order.Total, order.Currency),
	})
}
