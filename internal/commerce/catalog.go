package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/01moynul/taptosell-storefront/internal/models"
)

// ProductQuery filters a product listing. Zero values are omitted.
type ProductQuery struct {
	Category string
	Search   string
	Sort     string // e.g., newest, price_asc, price_desc
	MinPrice string
	MaxPrice string
	Page     int
	PerPage  int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("category", q.Category)
	set("q", q.Search)
	set("sort", q.Sort)
	set("min_price", q.MinPrice)
	set("max_price", q.MaxPrice)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}

// ListProducts returns one page of the product listing.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (models.ProductPage, error) {
	var page models.ProductPage
	err := c.do(ctx, http.MethodGet, "/products", requestOptions{query: q.values()}, &page)
	if page.Products == nil {
		page.Products = []models.Product{}
	}
	return page, err
}

// GetProduct returns one product, with its variants, by slug.
func (c *Client) GetProduct(ctx context.Context, slug string) (models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug), requestOptions{}, &p)
	return p, err
}

// ListCategories returns the category tree.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", requestOptions{}, &resp); err != nil {
		return nil, err
	}
	if resp.Categories == nil {
		resp.Categories = []models.Category{}
	}
	return resp.Categories, nil
}

// GetSettings returns the store-wide settings.
func (c *Client) GetSettings(ctx context.Context) (models.StoreSettings, error) {
	var s models.StoreSettings
	err := c.do(ctx, http.MethodGet, "/settings", requestOptions{}, &s)
	return s, err
}

// GetPage returns an informational page by slug.
func (c *Client) GetPage(ctx context.Context, slug string) (models.Page, error) {
	var p models.Page
	err := c.do(ctx, http.MethodGet, "/pages/"+url.PathEscape(slug), requestOptions{}, &p)
	return p, err
}
