// Package theme holds the built-in storefront themes.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Palette is the set of brand colors a theme exposes to the frontend.
type Palette struct {
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Theme describes one visual theme. The frontend owns the actual layout;
// the storefront only tells it which theme is active and its parameters.
type Theme struct {
	Name           string  `json:"name"`
	DisplayName    string  `json:"displayName"`
	GridColumns    int     `json:"gridColumns"`
	CardStyle      string  `json:"cardStyle"`     // e.g., bordered, elevated, flat
	VariantPicker  string  `json:"variantPicker"` // buttons, dropdown, swatches
	ProductsPerRow int     `json:"productsPerRow"`
	Palette        Palette `json:"palette"`
}

// Registry holds all available themes.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry creates a registry with the three built-in themes.
func NewRegistry() *Registry {
	return &Registry{
		themes: map[string]Theme{
			"classic": {
				Name:           "classic",
				DisplayName:    "Classic",
				GridColumns:    12,
				CardStyle:      "bordered",
				VariantPicker:  "buttons",
				ProductsPerRow: 4,
				Palette:        Palette{Primary: "#1f2937", Accent: "#b45309", Background: "#ffffff", Text: "#111827"},
			},
			"modern": {
				Name:           "modern",
				DisplayName:    "Modern",
				GridColumns:    12,
				CardStyle:      "elevated",
				VariantPicker:  "swatches",
				ProductsPerRow: 3,
				Palette:        Palette{Primary: "#4f46e5", Accent: "#ec4899", Background: "#f9fafb", Text: "#0f172a"},
			},
			"minimal": {
				Name:           "minimal",
				DisplayName:    "Minimal",
				GridColumns:    8,
				CardStyle:      "flat",
				VariantPicker:  "dropdown",
				ProductsPerRow: 2,
				Palette:        Palette{Primary: "#000000", Accent: "#6b7280", Background: "#ffffff", Text: "#000000"},
			},
		},
	}
}

// Resolve returns the theme with the given name.
func (r *Registry) Resolve(name string) (Theme, error) {
	t, ok := r.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return t, nil
}

// Names returns all theme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
