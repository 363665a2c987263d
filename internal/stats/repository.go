package stats

import (
	"context"
	"time"
)

// Repository counts orders for the aggregate windows.
type Repository interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	CountAll(ctx context.Context) (int, error)
}
