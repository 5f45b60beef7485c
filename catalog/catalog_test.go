package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"taste-toffel-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

func newSeeded(t *testing.T, store Store) *Catalog {
	t.Helper()
	c := New(store, fixedNow)
	require.NoError(t, c.Seed(context.Background(), DemoMenu()))
	return c
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// stores runs fn against every Store implementation.
func stores(t *testing.T, fn func(t *testing.T, c *Catalog)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, newSeeded(t, NewMemoryStore()))
	})
	t.Run("sqlite", func(t *testing.T) {
		store, err := NewSQLStore(openTestDB(t))
		require.NoError(t, err)
		fn(t, newSeeded(t, store))
	})
}

func ids(items []models.MenuItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestAddAppendsWithFreshID(t *testing.T) {
	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()
		before, err := c.List(ctx)
		require.NoError(t, err)

		item, err := c.Add(ctx, NewMenuItem{
			Name:        "Pavlova",
			Description: "Meringue with cream and berries",
			Price:       "65.50",
			Category:    "Desserts",
		})
		require.NoError(t, err)

		assert.NotContains(t, ids(before), item.ID)
		assert.Equal(t, "65.5", item.Price.String())
		assert.Equal(t, models.CategoryDesserts, item.Category)

		after, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		last := after[len(after)-1]
		assert.Equal(t, item.ID, last.ID)
		assert.Equal(t, item.Name, last.Name)
		assert.True(t, item.Price.Equal(last.Price))
		assert.Equal(t, ids(before), ids(after[:len(before)]))
	})
}

func TestAddIDsStayUniqueWithFrozenClock(t *testing.T) {
	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			item, err := c.Add(ctx, NewMenuItem{Name: "Soup", Description: "Hot", Price: "10", Category: "Starters"})
			require.NoError(t, err)
			assert.False(t, seen[item.ID], "id %s handed out twice", item.ID)
			seen[item.ID] = true
		}
	})
}

func TestConcurrentAddsKeepIDsUnique(t *testing.T) {
	const workers = 20
	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()
		seed, err := c.Len(ctx)
		require.NoError(t, err)

		var wg sync.WaitGroup
		added := make(chan string, workers)
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				item, err := c.Add(ctx, NewMenuItem{Name: "Soup", Description: "Hot", Price: "10", Category: "Starters"})
				if err != nil {
					errs <- err
					return
				}
				added <- item.ID
				_, _ = c.List(ctx)
			}()
		}
		wg.Wait()
		close(added)
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		seen := map[string]bool{}
		for id := range added {
			assert.False(t, seen[id], "id %s handed out twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)

		n, err := c.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, seed+workers, n)
	})
}

func TestAddRejectsInvalidForms(t *testing.T) {
	cases := []struct {
		name   string
		in     NewMenuItem
		fields []string
	}{
		{"empty name", NewMenuItem{Description: "d", Price: "10", Category: "Mains"}, []string{"name"}},
		{"blank description", NewMenuItem{Name: "n", Description: "   ", Price: "10", Category: "Mains"}, []string{"description"}},
		{"zero price", NewMenuItem{Name: "n", Description: "d", Price: "0", Category: "Mains"}, []string{"price"}},
		{"negative price", NewMenuItem{Name: "n", Description: "d", Price: "-4.5", Category: "Mains"}, []string{"price"}},
		{"non-numeric price", NewMenuItem{Name: "n", Description: "d", Price: "abc", Category: "Mains"}, []string{"price"}},
		{"exponent price", NewMenuItem{Name: "n", Description: "d", Price: "1e300000000", Category: "Mains"}, []string{"price"}},
		{"long digit price", NewMenuItem{Name: "n", Description: "d", Price: "1234567890123", Category: "Mains"}, []string{"price"}},
		{"price over limit", NewMenuItem{Name: "n", Description: "d", Price: "100000", Category: "Mains"}, []string{"price"}},
		{"sub-cent price", NewMenuItem{Name: "n", Description: "d", Price: "0.001", Category: "Mains"}, []string{"price"}},
		{"missing category", NewMenuItem{Name: "n", Description: "d", Price: "10"}, []string{"category"}},
		{"unknown category", NewMenuItem{Name: "n", Description: "d", Price: "10", Category: "Sides"}, []string{"category"}},
		{"everything empty", NewMenuItem{}, []string{"name", "description", "price", "category"}},
	}

	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				before, err := c.Len(ctx)
				require.NoError(t, err)

				_, err = c.Add(ctx, tc.in)

				var verr *models.ValidationError
				require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
				assert.Equal(t, tc.fields, verr.Fields)

				after, err := c.Len(ctx)
				require.NoError(t, err)
				assert.Equal(t, before, after)
			})
		}
	})
}

func TestAddValidationMessages(t *testing.T) {
	c := newSeeded(t, NewMemoryStore())
	ctx := context.Background()

	_, err := c.Add(ctx, NewMenuItem{Name: "n"})
	assert.Contains(t, err.Error(), "Please fill in all fields")

	_, err = c.Add(ctx, NewMenuItem{Name: "n", Description: "d", Price: "free", Category: "Mains"})
	assert.Contains(t, err.Error(), "Please enter a valid price")
}

func TestFilterAllReturnsWholeMenu(t *testing.T) {
	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()
		all, err := c.List(ctx)
		require.NoError(t, err)

		filtered, err := c.Filter(ctx, models.CategoryAll)
		require.NoError(t, err)
		assert.Equal(t, all, filtered)
	})
}

func TestFilterByCategoryKeepsOrder(t *testing.T) {
	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()
		_, err := c.Add(ctx, NewMenuItem{Name: "Bruschetta", Description: "Toast", Price: "45", Category: "Starters"})
		require.NoError(t, err)

		starters, err := c.Filter(ctx, models.CategoryStarters)
		require.NoError(t, err)
		require.Len(t, starters, 4)
		for _, item := range starters {
			assert.Equal(t, models.CategoryStarters, item.Category)
		}
		assert.Equal(t, []string{"1", "2", "3"}, ids(starters[:3]))
		assert.Equal(t, "Bruschetta", starters[3].Name)

		drinks, err := c.Filter(ctx, models.CategoryDrinks)
		require.NoError(t, err)
		assert.Equal(t, []string{"8"}, ids(drinks))
	})
}

func TestRemove(t *testing.T) {
	stores(t, func(t *testing.T, c *Catalog) {
		ctx := context.Background()

		removed, err := c.Remove(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.False(t, removed)
		n, _ := c.Len(ctx)
		assert.Equal(t, 8, n)

		removed, err = c.Remove(ctx, "4")
		require.NoError(t, err)
		assert.True(t, removed)

		items, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "5", "6", "7", "8"}, ids(items))

		_, found, err := c.Get(ctx, "4")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestCounts(t *testing.T) {
	c := newSeeded(t, NewMemoryStore())
	counts, err := c.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[models.Category]int{
		models.CategoryAll:      8,
		models.CategoryStarters: 3,
		models.CategoryMains:    2,
		models.CategoryDesserts: 2,
		models.CategoryDrinks:   1,
	}, counts)
}

func TestListReturnsCopy(t *testing.T) {
	c := newSeeded(t, NewMemoryStore())
	ctx := context.Background()
	items, err := c.List(ctx)
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Caesar Salad", again[0].Name)
}

func TestSQLStoreStartsEmpty(t *testing.T) {
	db := openTestDB(t)
	first, err := NewSQLStore(db)
	require.NoError(t, err)
	require.NoError(t, first.Reset(context.Background(), DemoMenu()))

	second, err := NewSQLStore(db)
	require.NoError(t, err)
	items, err := second.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
