package menu

import "github.com/shopspring/decimal"

// Category partitions the customer-facing menu.
type Category string

const (
	CategorySandwiches Category = "sandwiches"
	CategoryDrinks     Category = "drinks"
	CategoryExtras     Category = "extras"
)

// Valid reports whether c is one of the three menu categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySandwiches, CategoryDrinks, CategoryExtras:
		return true
	}
	return false
}

// Item is a purchasable catalog entry. Active controls customer visibility
// without deleting the item.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Active      bool            `json:"active"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// GroupByCategory partitions items for the customer menu view.
func GroupByCategory(items []Item) map[Category][]Item {
	grouped := make(map[Category][]Item)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}
