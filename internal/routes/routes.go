package routes

import (
	"net/http"
	"time"

	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/handlers"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Form endpoints are limited per client IP.
const (
	formRequestsPerWindow = 5
	formWindow            = time.Minute
	chatRequestsPerWindow = 20
)

// SetupRouter wires the storefront API. counter backs the rate limiter.
func SetupRouter(h *handlers.Handlers, counter cache.Counter) *gin.Engine {
	router := gin.Default()

	// --- Global Middleware ---
	// CORS must be the very first thing the router uses.
	router.Use(middleware.CORS(h.Config.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.Locale(h.Config.DefaultLocale))
	router.Use(middleware.CartSession(h.Signer))

	formLimit := middleware.RateLimiter(counter, formRequestsPerWindow, formWindow)

	v1 := router.Group("/v1")
	{
		// --- Ping Route ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Storefront Boot ---
		v1.GET("/storefront", h.GetStorefront)

		// --- Catalog Routes ---
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:slug", h.GetProduct)
		v1.POST("/products/:slug/availability", h.CheckAvailability)
		v1.GET("/categories", h.ListCategories)

		// --- Cart Routes ---
		v1.GET("/cart", h.GetCart)
		v1.POST("/cart/items", h.AddToCart)
		v1.PATCH("/cart/items/:id", h.UpdateCartItem)
		v1.DELETE("/cart/items/:id", h.DeleteCartItem)

		// --- Checkout Routes ---
		v1.GET("/checkout", h.GetCheckout)
		v1.POST("/checkout", formLimit, h.PlaceOrder)

		// --- Content & Forms ---
		v1.GET("/pages/:slug", h.GetPage)
		v1.POST("/contact", formLimit, h.SubmitContact)
		v1.POST("/newsletter", formLimit, h.Subscribe)

		// --- AI Assistant ---
		v1.POST("/assistant/chat", middleware.RateLimiter(counter, chatRequestsPerWindow, formWindow), h.ChatAssistant)
	}

	return router
}
