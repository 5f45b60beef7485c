package catalog

import (
	"taste-toffel-api/models"

	"github.com/shopspring/decimal"
)

// DemoMenu is the menu every fresh process starts with.
func DemoMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Caesar Salad", Description: "Fresh romaine lettuce with Caesar dressing, croutons, and parmesan", Price: decimal.RequireFromString("89.99"), Category: models.CategoryStarters},
		{ID: "2", Name: "Caprese Salad", Description: "Fresh mozzarella, tomatoes, and basil with balsamic glaze", Price: decimal.RequireFromString("79.99"), Category: models.CategoryStarters},
		{ID: "3", Name: "Beef Carpaccio", Description: "Thinly sliced raw beef with arugula, capers, and parmesan", Price: decimal.RequireFromString("149.99"), Category: models.CategoryStarters},
		{ID: "4", Name: "Grilled Salmon", Description: "Atlantic salmon with herb butter and seasonal vegetables", Price: decimal.RequireFromString("189.99"), Category: models.CategoryMains},
		{ID: "5", Name: "Filet Mignon", Description: "8oz premium beef tenderloin with red wine reduction", Price: decimal.RequireFromString("289.99"), Category: models.CategoryMains},
		{ID: "6", Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with molten center and vanilla ice cream", Price: decimal.RequireFromString("89.99"), Category: models.CategoryDesserts},
		{ID: "7", Name: "Tiramisu", Description: "Classic Italian dessert with coffee-soaked ladyfingers", Price: decimal.RequireFromString("79.99"), Category: models.CategoryDesserts},
		{ID: "8", Name: "Fresh Orange Juice", Description: "Freshly squeezed orange juice", Price: decimal.RequireFromString("35.99"), Category: models.CategoryDrinks},
	}
}
