package menu

import (
	"context"

	"github.com/google/uuid"
)

// InMemoryRepository keeps items in insertion order. Used by tests.
type InMemoryRepository struct {
	items []*Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *InMemoryRepository) ListActive(ctx context.Context) ([]Item, error) {
	var out []Item
	for _, item := range r.items {
		if item.Active {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) find(id string) *Item {
	for _, item := range r.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Item, error) {
	item := r.find(id)
	if item == nil {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	existing := r.find(item.ID)
	if existing == nil {
		return ErrNotFound
	}
	*existing = *item
	return nil
}

func (r *InMemoryRepository) ToggleActive(ctx context.Context, id string) (bool, error) {
	item := r.find(id)
	if item == nil {
		return false, ErrNotFound
	}
	item.Active = !item.Active
	return item.Active, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
