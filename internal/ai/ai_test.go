package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/01moynul/taptosell-storefront/internal/commerce"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/shopspring/decimal"
)

type fakeSearcher struct {
	got  commerce.ProductQuery
	page models.ProductPage
	err  error
}

func (f *fakeSearcher) ListProducts(_ context.Context, q commerce.ProductQuery) (models.ProductPage, error) {
	f.got = q
	return f.page, f.err
}

func TestRunSearch(t *testing.T) {
	searcher := &fakeSearcher{page: models.ProductPage{Products: []models.Product{
		{
			Name: "Linen Shirt", Slug: "linen-shirt", Price: decimal.RequireFromString("49.5"), Currency: "SAR",
			Variants: []models.ProductVariant{{ID: "a", StockQuantity: 0}, {ID: "b", StockQuantity: 2}},
		},
		{Name: "Scarf", Slug: "scarf", Price: decimal.NewFromInt(20), Currency: "SAR"},
	}}}

	out := runSearch(context.Background(), searcher, map[string]any{"query": "linen", "category": "men"})
	if searcher.got.Search != "linen" || searcher.got.Category != "men" || searcher.got.PerPage != 5 {
		t.Fatalf("unexpected query %+v", searcher.got)
	}

	var got []productSummary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("result is not JSON: %v (%s)", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if !got[0].InStock || got[0].Price != "49.50" || got[0].Variants != 2 {
		t.Errorf("unexpected first summary %+v", got[0])
	}
	if got[1].InStock {
		t.Errorf("scarf has no stock: %+v", got[1])
	}
}

func TestRunSearchError(t *testing.T) {
	out := runSearch(context.Background(), &fakeSearcher{err: errors.New("down")}, map[string]any{"query": "x"})
	if !strings.HasPrefix(out, "Search error") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSystemPromptLanguage(t *testing.T) {
	if !strings.Contains(systemPrompt("Souq", "ar"), "Arabic") {
		t.Error("Arabic locale should ask for Arabic answers")
	}
	if !strings.Contains(systemPrompt("Souq", "en"), "English") {
		t.Error("English locale should ask for English answers")
	}
}
