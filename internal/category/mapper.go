// Package category translates provider taxonomy codes into the simplified
// household categories used by the budgeting pipeline.
package category

import (
	"strings"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// mapping is the canonical provider-code table. Lookups are case-sensitive
// exact matches on the primary taxonomy code; a miss is not an error and
// degrades to Uncategorized.
var mapping = map[string]model.Category{
	"FOOD_AND_DRINK":      model.CategoryFood,
	"AUTO_AND_TRANSPORT":  model.CategoryTransportation,
	"TRANSPORTATION":      model.CategoryTransportation,
	"BILLS_AND_UTILITIES": model.CategoryBills,
	"SHOPPING":            model.CategoryShopping,
	"GENERAL_MERCHANDISE": model.CategoryShopping,
	"ENTERTAINMENT":       model.CategoryEntertainment,
	"TRAVEL":              model.CategoryTravel,
	"TRANSFER":            model.CategoryOther,
	"PAYMENT":             model.CategoryOther,
	"INCOME":              model.CategoryOther,
	"LOAN_PAYMENTS":       model.CategoryOther,
}

// Lookup maps a primary taxonomy code to its simplified category.
// Simplified names map to themselves so re-normalizing already-cleaned
// data keeps its category. Unmapped codes return Uncategorized and
// ok=false.
func Lookup(code string) (model.Category, bool) {
	if cat, ok := mapping[code]; ok {
		return cat, true
	}
	if cat := model.Category(code); cat.IsValid() {
		return cat, true
	}
	return model.CategoryUncategorized, false
}

// Codes returns every provider code the mapper knows about.
func Codes() []string {
	codes := make([]string, 0, len(mapping))
	for code := range mapping {
		codes = append(codes, code)
	}
	return codes
}

// Resolver attempts to derive a simplified category from one facet of a raw
// record. It reports ok=false when its facet is absent or unmapped so the
// next resolver in the chain gets a chance.
type Resolver func(raw model.RawTransaction) (model.Category, bool)

// resolveDescription tries the free-text description field, upper-cased to
// match the provider code table.
func resolveDescription(raw model.RawTransaction) (model.Category, bool) {
	if raw.Description == "" {
		return model.CategoryUncategorized, false
	}
	return Lookup(strings.ToUpper(raw.Description))
}

// resolvePrimaryCode tries the structured taxonomy descriptor's primary code.
func resolvePrimaryCode(raw model.RawTransaction) (model.Category, bool) {
	if raw.FinanceCategory == nil || raw.FinanceCategory.Primary == "" {
		return model.CategoryUncategorized, false
	}
	return Lookup(raw.FinanceCategory.Primary)
}

// resolveLabels tries the first element of the free-text label list.
func resolveLabels(raw model.RawTransaction) (model.Category, bool) {
	if len(raw.Labels) == 0 {
		return model.CategoryUncategorized, false
	}
	return Lookup(raw.Labels[0])
}

// resolvers is the fixed precedence order: description, then structured
// code, then label list. Uncategorized is the terminal fallback.
var resolvers = []Resolver{
	resolveDescription,
	resolvePrimaryCode,
	resolveLabels,
}

// Resolve runs the resolver chain against a raw record and returns the
// first category a resolver produces, or Uncategorized.
func Resolve(raw model.RawTransaction) model.Category {
	for _, resolve := range resolvers {
		if cat, ok := resolve(raw); ok {
			return cat
		}
	}
	return model.CategoryUncategorized
}
