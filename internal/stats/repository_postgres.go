package stats

import (
	"context"
	"time"

	"lanchonete/internal/db"
)

type PostgresRepository struct {
	db db.Pool
}

func NewPostgresRepository(db db.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)::int
		FROM orders
		WHERE created_at >= $1
		  AND created_at <= $2
	`, from, to).Scan(&count)
	return count, err
}

func (r *PostgresRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)::int
		FROM orders
	`).Scan(&count)
	return count, err
}
