package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/01moynul/taptosell-storefront/internal/auth"
	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/i18n"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		header string
		want   i18n.Locale
	}{
		{"query wins", "/x?lang=ar", "en-US", i18n.Locale{Code: "ar", Direction: "rtl"}},
		{"header", "/x", "ar-EG", i18n.Locale{Code: "ar", Direction: "rtl"}},
		{"default", "/x?lang=fr", "", i18n.Locale{Code: "en", Direction: "ltr"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Locale("en"))
			var got i18n.Locale
			r.GET("/x", func(c *gin.Context) { got = GetLocale(c) })

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req.Header.Set("Accept-Language", tt.header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got != tt.want {
				t.Fatalf("locale = %+v, want %+v", got, tt.want)
			}
			if w.Header().Get("Content-Language") != tt.want.Code {
				t.Fatalf("Content-Language = %q", w.Header().Get("Content-Language"))
			}
		})
	}
}

func TestCartSession(t *testing.T) {
	signer := auth.NewSigner("s")
	token, _ := signer.GenerateCartToken("cart_9")

	r := gin.New()
	r.Use(CartSession(signer))
	var cartID string
	var ok bool
	r.GET("/x", func(c *gin.Context) { cartID, ok = GetCartID(c) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: CartCookie, Value: token})
	r.ServeHTTP(httptest.NewRecorder(), req)
	if !ok || cartID != "cart_9" {
		t.Fatalf("cart id = %q, %v", cartID, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: CartCookie, Value: "tampered"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if ok {
		t.Fatal("tampered cookie must not yield a cart")
	}
	if w.Header().Get("Set-Cookie") == "" {
		t.Fatal("tampered cookie should be cleared")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "6f1c2a3e-8d7b-4f5a-9c0e-1b2d3f4a5b6c")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-Id"); got != "6f1c2a3e-8d7b-4f5a-9c0e-1b2d3f4a5b6c" {
		t.Fatalf("caller request id not reused: %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/contact", RateLimiter(cache.NewMemoryCounter(), 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes %v", codes)
	}
}
