package expense

// Category names produced by the MCC mapping.
const (
	Groceries     = "Groceries"
	Restaurants   = "Restaurants"
	Transport     = "Transport"
	Entertainment = "Entertainment"
	Rent          = "Rent"
	Books         = "Books"
	Cosmetics     = "Cosmetics"
	Investments   = "Investments"
	Other         = "Other"
)

// Category is a spending category and the icon used to render it.
type Category struct {
	Name string
	Icon string
}

var mccCategories = map[string]Category{
	"5411": {Groceries, "shopping-bag"},
	"5812": {Restaurants, "utensils"},
	"4111": {Transport, "car"},
	"5813": {Entertainment, "music"},
	"6513": {Rent, "home"},
	"5192": {Books, "book"},
	"5977": {Cosmetics, "shopping-bag"},
	"6211": {Investments, "trending-up"},
}

var otherCategory = Category{Other, "shopping-bag"}

// CategoryFor maps a merchant category code to its spending category.
// Unknown codes fall into Other.
func CategoryFor(mcc string) Category {
	if c, ok := mccCategories[mcc]; ok {
		return c
	}
	return otherCategory
}

// IconFor returns the icon of a category by name.
func IconFor(name string) string {
	for _, c := range mccCategories {
		if c.Name == name {
			return c.Icon
		}
	}
	return otherCategory.Icon
}

// discretionary categories are the ones savings suggestions are made for.
var discretionary = map[string]bool{
	Restaurants:   true,
	Entertainment: true,
	Cosmetics:     true,
	Books:         true,
	Other:         true,
}

// IsDiscretionary reports whether spending in the category can be cut.
func IsDiscretionary(name string) bool { return discretionary[name] }
