// Package variant derives selectable option states from a product's variants.
//
// All functions are pure: they never mutate their inputs and hold no shared
// state, so selector widgets may call them concurrently.
package variant

import (
	"strings"

	"github.com/01moynul/taptosell-storefront/internal/models"
)

// Combination pairs one variant's attribute values with its availability.
// Attribute keys are lower-cased.
type Combination struct {
	VariantID  string            `json:"variantId"`
	Attributes map[string]string `json:"attributes"`
	Available  bool              `json:"available"`
}

// MatchMode controls how a combination that lacks a selected attribute is treated.
type MatchMode int

const (
	// MatchWildcard treats a missing attribute as matching any value.
	MatchWildcard MatchMode = iota
	// MatchStrict treats a missing attribute as never matching.
	MatchStrict
)

// NormalizeName lower-cases an attribute name for matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildCombinations returns one combination per variant, in input order.
// A variant is available when its stock is strictly greater than minStock.
func BuildCombinations(variants []models.ProductVariant, minStock int) []Combination {
	combos := make([]Combination, 0, len(variants))
	for _, v := range variants {
		combos = append(combos, Combination{
			VariantID:  v.ID,
			Attributes: attributeMap(v.Options),
			Available:  v.StockQuantity > minStock,
		})
	}
	return combos
}

func attributeMap(options []models.ProductVariantOption) map[string]string {
	attrs := make(map[string]string, len(options))
	for _, o := range options {
		attrs[NormalizeName(o.Name)] = o.Value
	}
	return attrs
}

// Matches reports whether every pair of sel is present in the combination.
// Keys of sel must already be normalized.
func (c Combination) Matches(sel Selection, mode MatchMode) bool {
	for name, want := range sel {
		got, ok := c.Attributes[name]
		if !ok {
			if mode == MatchStrict {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

// IsOptionValueAvailable reports whether picking value for attribute, with the
// other selections held fixed, leads to at least one available combination.
// Attributes not selected are unconstrained.
func IsOptionValueAvailable(attribute, value string, others Selection, combos []Combination) bool {
	return MatchWildcard.IsOptionValueAvailable(attribute, value, others, combos)
}

// IsOptionValueAvailable is the predicate evaluated with match mode m.
func (m MatchMode) IsOptionValueAvailable(attribute, value string, others Selection, combos []Combination) bool {
	if len(combos) == 0 {
		return false
	}
	hypothetical := others.With(attribute, value)
	for _, c := range combos {
		if c.Available && c.Matches(hypothetical, m) {
			return true
		}
	}
	return false
}
