package variant

import (
	"errors"
	"fmt"

	"github.com/01moynul/taptosell-storefront/internal/models"
)

var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownValue     = errors.New("unknown attribute value")
)

// Selection is a partial choice of one value per attribute, keyed by
// normalized attribute name.
type Selection map[string]string

// NewSelection returns an empty selection, or one pre-seeded with the first
// variant's attributes when seed is true.
func NewSelection(variants []models.ProductVariant, seed bool) Selection {
	sel := Selection{}
	if !seed || len(variants) == 0 {
		return sel
	}
	for _, o := range variants[0].Options {
		sel[NormalizeName(o.Name)] = o.Value
	}
	return sel
}

// SelectionFrom builds a selection from raw attribute names, normalizing keys.
// Empty values are dropped.
func SelectionFrom(raw map[string]string) Selection {
	sel := make(Selection, len(raw))
	for name, value := range raw {
		if value == "" {
			continue
		}
		sel[NormalizeName(name)] = value
	}
	return sel
}

// Get returns the selected value for an attribute.
func (s Selection) Get(attribute string) (string, bool) {
	v, ok := s[NormalizeName(attribute)]
	return v, ok
}

// With returns a copy of s with attribute set to value.
func (s Selection) With(attribute, value string) Selection {
	out := make(Selection, len(s)+1)
	for k, v := range s {
		out[NormalizeName(k)] = v
	}
	out[NormalizeName(attribute)] = value
	return out
}

// Without returns a copy of s with attribute removed.
func (s Selection) Without(attribute string) Selection {
	key := NormalizeName(attribute)
	out := make(Selection, len(s))
	for k, v := range s {
		if nk := NormalizeName(k); nk != key {
			out[nk] = v
		}
	}
	return out
}

// Validate checks that every selected value is drawn from the option set.
func (s Selection) Validate(set OptionSet) error {
	for name, value := range s {
		opt, ok := set.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
		if !opt.Has(value) {
			return fmt.Errorf("%w: %q for %s", ErrUnknownValue, value, opt.Name)
		}
	}
	return nil
}

// Complete reports whether every attribute of the option set is selected.
func (s Selection) Complete(set OptionSet) bool {
	for _, opt := range set {
		if _, ok := s[opt.Key]; !ok {
			return false
		}
	}
	return true
}

// FindVariant returns the variant whose full attribute set equals sel.
func FindVariant(sel Selection, variants []models.ProductVariant) (models.ProductVariant, bool) {
	for _, v := range variants {
		attrs := attributeMap(v.Options)
		if len(attrs) != len(sel) {
			continue
		}
		match := true
		for name, value := range attrs {
			if got, ok := sel[name]; !ok || got != value {
				match = false
				break
			}
		}
		if match {
			return v, true
		}
	}
	return models.ProductVariant{}, false
}
