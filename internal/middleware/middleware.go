// Package middleware holds the gin middleware of the storefront API.
package middleware

import (
	"net/http"
	"time"

	"github.com/01moynul/taptosell-storefront/internal/auth"
	"github.com/01moynul/taptosell-storefront/internal/i18n"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware.
const (
	LocaleKey    = "locale"
	CartIDKey    = "cartID"
	RequestIDKey = "requestID"
)

// CartCookie is the name of the guest cart session cookie.
const CartCookie = "sf_cart"

// CORS allows the theme frontends to call the API with credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Request-Id", "Idempotency-Key"},
		ExposeHeaders:    []string{"X-Request-Id", "Content-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RequestID tags each request with an ID, reusing the caller's if present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// Locale resolves the request locale from ?lang=, then the Accept-Language
// header, then the configured default.
func Locale(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc, ok := i18n.Lookup(c.Query("lang"))
		if !ok {
			loc = i18n.Match(c.GetHeader("Accept-Language"), defaultLocale)
		}
		c.Set(LocaleKey, loc)
		c.Header("Content-Language", loc.Code)
		c.Next()
	}
}

// GetLocale returns the locale set by Locale, defaulting to English.
func GetLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(LocaleKey); ok {
		if loc, ok := v.(i18n.Locale); ok {
			return loc
		}
	}
	return i18n.Locale{Code: i18n.English, Direction: i18n.LTR}
}

// CartSession reads the cart cookie and exposes the cart ID it carries.
// Invalid or expired cookies are cleared; the request continues without a cart.
func CartSession(signer *auth.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CartCookie)
		if err == nil && token != "" {
			cartID, err := signer.ValidateCartToken(token)
			if err != nil {
				ClearCartCookie(c)
			} else {
				c.Set(CartIDKey, cartID)
			}
		}
		c.Next()
	}
}

// GetCartID returns the cart ID of the session, if any.
func GetCartID(c *gin.Context) (string, bool) {
	id := c.GetString(CartIDKey)
	return id, id != ""
}

// SetCartCookie stores a cart token in the session cookie.
func SetCartCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CartCookie, token, int(auth.CartTokenTTL.Seconds()), "/", "", secure, true)
}

// ClearCartCookie removes the session cookie.
func ClearCartCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CartCookie, "", -1, "/", "", false, true)
}
