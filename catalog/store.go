package catalog

import (
	"context"

	"taste-toffel-api/models"
)

// Store keeps the ordered menu. Implementations do not validate; Catalog
// does that before anything reaches a store.
type Store interface {
	// List returns every item in insertion order.
	List(ctx context.Context) ([]models.MenuItem, error)
	// Append adds item after the last one.
	Append(ctx context.Context, item models.MenuItem) error
	// Delete removes the item with the given id and reports whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
	// Reset replaces the whole menu with items, in order.
	Reset(ctx context.Context, items []models.MenuItem) error
}

// MemoryStore is a Store backed by a plain slice. It is not safe for
// concurrent use on its own; Catalog serializes access.
type MemoryStore struct {
	items []models.MenuItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List(_ context.Context) ([]models.MenuItem, error) {
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Append(_ context.Context, item models.MenuItem) error {
	s.items = append(s.items, item)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Reset(_ context.Context, items []models.MenuItem) error {
	s.items = make([]models.MenuItem, len(items))
	copy(s.items, items)
	return nil
}
