package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/01moynul/taptosell-storefront/internal/ai"
	"github.com/01moynul/taptosell-storefront/internal/auth"
	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/commerce"
	"github.com/01moynul/taptosell-storefront/internal/config"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/01moynul/taptosell-storefront/internal/theme"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// ContactSaver stores contact-form submissions.
type ContactSaver interface {
	SaveMessage(ctx context.Context, msg *models.ContactMessage) error
}

// NewsletterSubscriber stores newsletter sign-ups.
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, email, locale string) (bool, error)
}

// Assistant answers shopper questions.
type Assistant interface {
	Answer(ctx context.Context, searcher ai.ProductSearcher, locale, message string) (string, int, error)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Config   *config.Config
	Commerce *commerce.Client
	Cache    *cache.Cache
	Theme    theme.Theme
	Signer   *auth.Signer

	// Optional: nil when the backing service is not configured.
	Contacts   ContactSaver
	Newsletter NewsletterSubscriber
	Assistant  Assistant
}

// api returns the commerce client scoped to the request locale.
func (h *Handlers) api(c *gin.Context) *commerce.Client {
	return h.Commerce.WithLocale(middleware.GetLocale(c).Code)
}

// respondCommerceError maps a commerce API failure to a storefront response.
func respondCommerceError(c *gin.Context, err error, notFound string) {
	var apiErr *commerce.APIError
	switch {
	case commerce.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.As(err, &apiErr) && commerce.IsClientError(err):
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message, "code": apiErr.Code})
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		c.Status(499)
	default:
		log.Printf("commerce api error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Commerce service unavailable"})
	}
}

// cleanSlug lower-cases a path slug and reports whether it is well-formed.
func cleanSlug(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	return s, s != "" && slug.IsSlug(s)
}
