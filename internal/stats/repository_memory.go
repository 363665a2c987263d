package stats

import (
	"context"
	"time"
)

// InMemoryRepository counts over a fixed set of creation timestamps. Used by tests.
type InMemoryRepository struct {
	createdAt []time.Time
}

func NewInMemoryRepository(createdAt ...time.Time) *InMemoryRepository {
	return &InMemoryRepository{createdAt: createdAt}
}

func (r *InMemoryRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	count := 0
	for _, ts := range r.createdAt {
		if !ts.Before(from) && !ts.After(to) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) CountAll(ctx context.Context) (int, error) {
	return len(r.createdAt), nil
}
