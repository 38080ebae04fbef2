package variant

import "github.com/01moynul/taptosell-storefront/internal/models"

// Option is one attribute axis with its possible values in first-seen order.
type Option struct {
	Name   string   `json:"name"` // display name as first seen
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Has reports whether value is one of the option's values.
func (o Option) Has(value string) bool {
	for _, v := range o.Values {
		if v == value {
			return true
		}
	}
	return false
}

// OptionSet maps each attribute of a product to its possible values.
type OptionSet []Option

// BuildOptionSet derives the option set from a variant list.
func BuildOptionSet(variants []models.ProductVariant) OptionSet {
	set := OptionSet{}
	index := map[string]int{}
	for _, v := range variants {
		for _, o := range v.Options {
			key := NormalizeName(o.Name)
			i, ok := index[key]
			if !ok {
				i = len(set)
				index[key] = i
				set = append(set, Option{Name: o.Name, Key: key})
			}
			if !set[i].Has(o.Value) {
				set[i].Values = append(set[i].Values, o.Value)
			}
		}
	}
	return set
}

// Lookup finds an option by attribute name, case-insensitively.
func (s OptionSet) Lookup(name string) (Option, bool) {
	key := NormalizeName(name)
	for _, o := range s {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// ValueState describes how a selector should render one option value.
type ValueState struct {
	Value     string `json:"value"`
	Selected  bool   `json:"selected"`
	Available bool   `json:"available"`
}

// OptionView is an option with the state of each of its values.
type OptionView struct {
	Name   string       `json:"name"`
	Key    string       `json:"key"`
	Values []ValueState `json:"values"`
}

// OptionStates evaluates every (attribute, value) pair against the current
// selection. Each value is checked with the other attributes held fixed.
func OptionStates(set OptionSet, sel Selection, combos []Combination, mode MatchMode) []OptionView {
	views := make([]OptionView, 0, len(set))
	for _, opt := range set {
		others := sel.Without(opt.Key)
		current, hasCurrent := sel[opt.Key]
		view := OptionView{Name: opt.Name, Key: opt.Key, Values: make([]ValueState, 0, len(opt.Values))}
		for _, value := range opt.Values {
			view.Values = append(view.Values, ValueState{
				Value:     value,
				Selected:  hasCurrent && current == value,
				Available: mode.IsOptionValueAvailable(opt.Key, value, others, combos),
			})
		}
		views = append(views, view)
	}
	return views
}
