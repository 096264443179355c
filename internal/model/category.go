package model

// Category is one of the fixed simplified spending categories.
type Category string

const (
	// CategoryFood covers groceries, restaurants, and drinks.
	CategoryFood Category = "Food"
	// CategoryTransportation covers local transit, fuel, and auto costs.
	CategoryTransportation Category = "Transportation"
	// CategoryBills covers utilities and recurring bills.
	CategoryBills Category = "Bills"
	// CategoryShopping covers retail and general merchandise.
	CategoryShopping Category = "Shopping"
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment Category = "Entertainment"
	// CategoryTravel covers flights, hotels, and trips.
	CategoryTravel Category = "Travel"
	// CategoryOther covers transfers, payments, and loan servicing.
	CategoryOther Category = "Other"
	// CategoryUncategorized is the fallback when no mapping applies.
	CategoryUncategorized Category = "Uncategorized"
)

// Categories lists every valid simplified category.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryBills,
		CategoryShopping,
		CategoryEntertainment,
		CategoryTravel,
		CategoryOther,
		CategoryUncategorized,
	}
}

// IsValid reports whether c is a member of the fixed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
