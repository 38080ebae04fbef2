package commerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/01moynul/taptosell-storefront/internal/models"
)

// CreateCart opens a new, empty cart.
func (c *Client) CreateCart(ctx context.Context) (models.Cart, error) {
	return c.cartCall(ctx, http.MethodPost, "/carts", nil)
}

// GetCart returns a cart by ID.
func (c *Client) GetCart(ctx context.Context, cartID string) (models.Cart, error) {
	return c.cartCall(ctx, http.MethodGet, cartPath(cartID), nil)
}

// AddCartItem adds quantity units of a product to the cart. variantID is empty
// for products without variants.
func (c *Client) AddCartItem(ctx context.Context, cartID, productID, variantID string, quantity int) (models.Cart, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	if variantID != "" {
		body["variantId"] = variantID
	}
	return c.cartCall(ctx, http.MethodPost, cartPath(cartID)+"/items", body)
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, cartID, itemID string, quantity int) (models.Cart, error) {
	body := map[string]any{"quantity": quantity}
	return c.cartCall(ctx, http.MethodPatch, cartPath(cartID)+"/items/"+url.PathEscape(itemID), body)
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, cartID, itemID string) (models.Cart, error) {
	return c.cartCall(ctx, http.MethodDelete, cartPath(cartID)+"/items/"+url.PathEscape(itemID), nil)
}

// GetCheckoutOptions lists shipping and payment methods for a cart.
func (c *Client) GetCheckoutOptions(ctx context.Context, cartID string) (models.CheckoutOptions, error) {
	var opts models.CheckoutOptions
	err := c.do(ctx, http.MethodGet, cartPath(cartID)+"/checkout", requestOptions{}, &opts)
	return opts, err
}

// PlaceOrder converts the cart into an order. The idempotency key lets the
// commerce API deduplicate retried submissions.
func (c *Client) PlaceOrder(ctx context.Context, cartID string, req models.CheckoutRequest, idempotencyKey string) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPost, cartPath(cartID)+"/checkout", requestOptions{
		body:    req,
		headers: map[string]string{"Idempotency-Key": idempotencyKey},
	}, &order)
	return order, err
}

func (c *Client) cartCall(ctx context.Context, method, path string, body any) (models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, method, path, requestOptions{body: body}, &cart); err != nil {
		return models.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	cart.Recalculate()
	return cart, nil
}

func cartPath(cartID string) string {
	return "/carts/" + url.PathEscape(cartID)
}
