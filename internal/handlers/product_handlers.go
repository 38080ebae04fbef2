package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/commerce"
	"github.com/01moynul/taptosell-storefront/internal/i18n"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/01moynul/taptosell-storefront/internal/variant"
	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 24
	maxPerPage     = 96
)

// VariantView is a variant with its computed availability and display price.
type VariantView struct {
	models.ProductVariant
	Available    bool   `json:"available"`
	DisplayPrice string `json:"displayPrice"`
	Image        string `json:"image,omitempty"`
}

// ProductView is the product detail payload consumed by the variant selectors.
type ProductView struct {
	Product         models.Product       `json:"product"`
	DisplayPrice    string               `json:"displayPrice"`
	Options         []variant.OptionView `json:"options"`
	Selection       variant.Selection    `json:"selection"`
	Complete        bool                 `json:"complete"`
	SelectedVariant *VariantView         `json:"selectedVariant,omitempty"`
}

// product loads a product through the cache.
func (h *Handlers) product(c *gin.Context, productSlug string) (models.Product, error) {
	api := h.api(c)
	return fetchCached(c.Request.Context(), h.Cache, cache.Key("product", api.Locale(), productSlug), func(ctx context.Context) (models.Product, error) {
		return api.GetProduct(ctx, productSlug)
	})
}

// freshProduct loads a product straight from the commerce API, for stock
// checks, and refreshes the cached copy with it.
func (h *Handlers) freshProduct(c *gin.Context, productSlug string) (models.Product, error) {
	api := h.api(c)
	p, err := api.GetProduct(c.Request.Context(), productSlug)
	if err != nil {
		return models.Product{}, err
	}
	cache.Put(c.Request.Context(), h.Cache, cache.Key("product", api.Locale(), productSlug), p)
	return p, nil
}

func fetchCached[T any](ctx context.Context, cc *cache.Cache, key string, load func(context.Context) (T, error)) (T, error) {
	v, _, err := cache.Fetch(ctx, cc, key, load)
	return v, err
}

// buildProductView evaluates every option value against the selection.
func buildProductView(p models.Product, sel variant.Selection, minStock int, locale string) ProductView {
	combos := variant.BuildCombinations(p.Variants, minStock)
	set := variant.BuildOptionSet(p.Variants)

	view := ProductView{
		Product:      p,
		DisplayPrice: i18n.FormatPrice(locale, p.Price, p.Currency),
		Options:      variant.OptionStates(set, sel, combos, variant.MatchWildcard),
		Selection:    sel,
		Complete:     sel.Complete(set),
	}
	if v, ok := resolveVariant(p, AddToCartInput{Selection: sel}); ok {
		vv := newVariantView(p, v, minStock, locale)
		view.SelectedVariant = &vv
	}
	return view
}

func newVariantView(p models.Product, v models.ProductVariant, minStock int, locale string) VariantView {
	vv := VariantView{
		ProductVariant: v,
		Available:      v.StockQuantity > minStock,
		DisplayPrice:   i18n.FormatPrice(locale, v.Price, p.Currency),
	}
	// Variation images are keyed by option value, e.g. "Red".
	for _, o := range v.Options {
		if img, ok := p.VariationImages[o.Value]; ok {
			vv.Image = img
			break
		}
	}
	return vv
}

// ListProducts returns a page of the catalog listing.
func (h *Handlers) ListProducts(c *gin.Context) {
	q := commerce.ProductQuery{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Sort:     c.DefaultQuery("sort", "newest"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Page:     1,
		PerPage:  defaultPerPage,
	}
	if q.Category != "" {
		if s, ok := cleanSlug(q.Category); ok {
			q.Category = s
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		q.Page = n
	}
	if raw := c.Query("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPerPage {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page"})
			return
		}
		q.PerPage = n
	}

	page, err := h.api(c).ListProducts(c.Request.Context(), q)
	if err != nil {
		respondCommerceError(c, err, "Products not found")
		return
	}

	locale := middleware.GetLocale(c).Code
	items := make([]gin.H, 0, len(page.Products))
	for _, p := range page.Products {
		items = append(items, gin.H{
			"product":      p,
			"displayPrice": i18n.FormatPrice(locale, p.Price, p.Currency),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"products": items,
		"page":     page.Page,
		"perPage":  page.PerPage,
		"total":    page.Total,
	})
}

// GetProduct returns the product detail view. The selection comes from
// options[<attribute>]=<value> query parameters; without any, it is seeded
// from the first variant.
func (h *Handlers) GetProduct(c *gin.Context) {
	productSlug, ok := cleanSlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	p, err := h.product(c, productSlug)
	if err != nil {
		respondCommerceError(c, err, "Product not found")
		return
	}

	raw := c.QueryMap("options")
	sel := variant.SelectionFrom(raw)
	if len(raw) == 0 {
		sel = variant.NewSelection(p.Variants, true)
	}
	if err := sel.Validate(variant.BuildOptionSet(p.Variants)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selection: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildProductView(p, sel, h.minStock(c), middleware.GetLocale(c).Code))
}

// AvailabilityInput is the selection sent by a variant selector.
type AvailabilityInput struct {
	Selection map[string]string `json:"selection"`
}

// CheckAvailability recomputes option states after a selection change.
func (h *Handlers) CheckAvailability(c *gin.Context) {
	productSlug, ok := cleanSlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	p, err := h.product(c, productSlug)
	if err != nil {
		respondCommerceError(c, err, "Product not found")
		return
	}

	sel := variant.SelectionFrom(input.Selection)
	if err := sel.Validate(variant.BuildOptionSet(p.Variants)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid selection: " + err.Error()})
		return
	}

	view := buildProductView(p, sel, h.minStock(c), middleware.GetLocale(c).Code)
	c.JSON(http.StatusOK, gin.H{
		"options":         view.Options,
		"selection":       view.Selection,
		"complete":        view.Complete,
		"selectedVariant": view.SelectedVariant,
	})
}

// ListCategories returns the category tree.
func (h *Handlers) ListCategories(c *gin.Context) {
	api := h.api(c)
	categories, err := fetchCached(c.Request.Context(), h.Cache, cache.Key("categories", api.Locale()), api.ListCategories)
	if err != nil {
		respondCommerceError(c, err, "Categories not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
