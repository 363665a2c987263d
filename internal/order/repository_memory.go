package order

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"lanchonete/internal/menu"
)

// InMemoryRepository is used by tests.
type InMemoryRepository struct {
	orders map[string]*Order
	now    func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]*Order),
		now:    time.Now,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.CreatedAt = r.now()

	copied := *o
	copied.Items = append([]menu.Item(nil), o.Items...)
	r.orders[o.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Order, error) {
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}
