package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/i18n"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/gin-gonic/gin"
)

// settings returns the store settings for the request locale, through the cache.
func (h *Handlers) settings(c *gin.Context) (models.StoreSettings, error) {
	api := h.api(c)
	s, _, err := cache.Fetch(c.Request.Context(), h.Cache, cache.Key("settings", api.Locale()), api.GetSettings)
	return s, err
}

// minStock returns the availability threshold: the store setting when the
// commerce API provides one, the configured value otherwise.
func (h *Handlers) minStock(c *gin.Context) int {
	s, err := h.settings(c)
	if err == nil && s.MinStock != nil && *s.MinStock >= 0 {
		return *s.MinStock
	}
	return h.Config.MinStock
}

// GetStorefront returns everything a theme needs to boot: the active theme,
// the resolved locale and the store settings.
func (h *Handlers) GetStorefront(c *gin.Context) {
	s, err := h.settings(c)
	if err != nil {
		respondCommerceError(c, err, "Settings not found")
		return
	}

	locales := []i18n.Locale{}
	for _, code := range []string{i18n.English, i18n.Arabic} {
		loc, _ := i18n.Lookup(code)
		locales = append(locales, loc)
	}

	c.JSON(http.StatusOK, gin.H{
		"theme":    h.Theme,
		"locale":   middleware.GetLocale(c),
		"locales":  locales,
		"settings": s,
	})
}

// RefreshSettings drops cached settings and reloads them for every locale.
// Called by the background worker.
func (h *Handlers) RefreshSettings(ctx context.Context) {
	if err := h.Cache.Invalidate(ctx, cache.Key("settings")); err != nil {
		log.Printf("settings refresh: invalidate failed: %v", err)
		return
	}
	for _, code := range []string{i18n.English, i18n.Arabic} {
		api := h.Commerce.WithLocale(code)
		if _, _, err := cache.Fetch(ctx, h.Cache, cache.Key("settings", code), api.GetSettings); err != nil {
			log.Printf("settings refresh (%s) failed: %v", code, err)
		}
	}
}
