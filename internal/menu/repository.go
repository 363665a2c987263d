package menu

import "context"

// Repository defines all database operations for catalog items
type Repository interface {

	// ListAll returns every item in insertion order (admin view).
	ListAll(ctx context.Context) ([]Item, error)

	// ListActive returns only customer-visible items.
	ListActive(ctx context.Context) ([]Item, error)

	// Get returns a single item by id.
	Get(ctx context.Context, id string) (*Item, error)

	// Create persists a new item, assigning its id.
	Create(ctx context.Context, item *Item) error

	// Update overwrites every field of an existing item.
	Update(ctx context.Context, item *Item) error

	// ToggleActive flips the active flag and returns the new value.
	ToggleActive(ctx context.Context, id string) (bool, error)

	// Delete permanently removes an item.
	Delete(ctx context.Context, id string) error
}
