package order

import "context"

// Repository defines all database operations for orders
type Repository interface {

	// Create persists a new order, assigning its id and creation timestamp.
	Create(ctx context.Context, o *Order) error

	// Get returns a single order by id.
	Get(ctx context.Context, id string) (*Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]Order, error)

	// UpdateStatus persists a new status for an existing order.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
