package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the way the mobile client sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category is one of the fixed menu sections
type Category string

const (
	CategoryStarters Category = "Starters"
	CategoryMains    Category = "Mains"
	CategoryDesserts Category = "Desserts"
	CategoryDrinks   Category = "Drinks"

	// CategoryAll is a filter value only; no item ever carries it.
	CategoryAll Category = "All"
)

var categories = []Category{CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks}

// Categories returns the menu sections in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the four menu sections
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseFilter turns a query value into a category filter. Empty means All.
func ParseFilter(s string) (Category, error) {
	if s == "" || Category(s) == CategoryAll {
		return CategoryAll, nil
	}
	if c := Category(s); c.Valid() {
		return c, nil
	}
	return "", &ValidationError{
		Fields:  []string{"category"},
		Message: "Unknown category. Must be: All, Starters, Mains, Desserts, or Drinks",
	}
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
}

// DisplayPrice renders the price the way the menu cards show it
func (m MenuItem) DisplayPrice() string {
	return "R" + m.Price.StringFixed(2)
}
