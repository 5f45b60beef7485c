package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"taste-toffel-api/models"

	"github.com/shopspring/decimal"
)

// NewMenuItem is the raw "add course" form. Price arrives as typed text.
type NewMenuItem struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required,menu_price"`
	Category    string `json:"category" validate:"required,oneof=Starters Mains Desserts Drinks"`
}

func (in NewMenuItem) trimmed() NewMenuItem {
	return NewMenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       strings.TrimSpace(in.Price),
		Category:    strings.TrimSpace(in.Category),
	}
}

// validateItem checks the form and returns the parsed price.
func validateItem(in NewMenuItem) (decimal.Decimal, error) {
	err := models.Validate.Struct(in)
	if err == nil {
		return decimal.RequireFromString(in.Price), nil
	}
	fieldErrs, ok := models.FieldErrors(err)
	if !ok {
		return decimal.Zero, err
	}

	verr := &models.ValidationError{}
	missing := false
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
		if fe.Tag() == "required" {
			missing = true
		}
	}
	switch {
	case missing:
		verr.Message = "Please fill in all fields"
	case fieldErrs[0].Field() == "price":
		verr.Message = "Please enter a valid price"
	default:
		verr.Message = "Please choose one of Starters, Mains, Desserts or Drinks"
	}
	return decimal.Zero, verr
}

// Catalog is the shared, ordered menu. Every operation is atomic with
// respect to the others.
type Catalog struct {
	mu     sync.Mutex
	store  Store
	now    func() time.Time
	lastID int64
}

// New wraps store. A nil clock means time.Now.
func New(store Store, now func() time.Time) *Catalog {
	if now == nil {
		now = time.Now
	}
	return &Catalog{store: store, now: now}
}

// Seed replaces the menu with items. Used once at startup.
func (c *Catalog) Seed(ctx context.Context, items []models.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Reset(ctx, items)
}

// Add validates the form and appends the new item at the end of the menu.
// A rejected form leaves the menu untouched.
func (c *Catalog) Add(ctx context.Context, in NewMenuItem) (models.MenuItem, error) {
	in = in.trimmed()
	price, err := validateItem(in)
	if err != nil {
		return models.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, err := c.store.List(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		taken[item.ID] = struct{}{}
	}

	item := models.MenuItem{
		ID:          c.nextID(taken),
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Category:    models.Category(in.Category),
	}
	if err := c.store.Append(ctx, item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// nextID hands out creation-time ids that never repeat, even when the
// clock stands still or goes backwards.
func (c *Catalog) nextID(taken map[string]struct{}) string {
	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	for {
		s := strconv.FormatInt(id, 10)
		if _, dup := taken[s]; !dup {
			c.lastID = id
			return s
		}
		id++
	}
}

// Remove deletes the item with the given id. Removing an unknown id is a
// no-op; the bool says whether anything was removed.
func (c *Catalog) Remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Delete(ctx, id)
}

// Filter returns the items of one category, or everything for CategoryAll,
// in menu order.
func (c *Catalog) Filter(ctx context.Context, category models.Category) ([]models.MenuItem, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == models.CategoryAll {
		return items, nil
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

// List returns a copy of the whole menu.
func (c *Catalog) List(ctx context.Context) ([]models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.List(ctx)
}

func (c *Catalog) Get(ctx context.Context, id string) (models.MenuItem, bool, error) {
	items, err := c.List(ctx)
	if err != nil {
		return models.MenuItem{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return models.MenuItem{}, false, nil
}

func (c *Catalog) Len(ctx context.Context) (int, error) {
	items, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Counts returns how many items each category holds, plus the total under
// CategoryAll.
func (c *Catalog) Counts(ctx context.Context) (map[models.Category]int, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[models.Category]int{models.CategoryAll: len(items)}
	for _, cat := range models.Categories() {
		counts[cat] = 0
	}
	for _, item := range items {
		counts[item.Category]++
	}
	return counts, nil
}
