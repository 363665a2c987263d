package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lanchonete/internal/db"
)

type PostgresRepository struct {
	db db.Pool
}

func NewPostgresRepository(db db.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `id, name, description, price, category, active, COALESCE(image_url, '')`

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.Active,
		&item.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]Item, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		ORDER BY created_at ASC
	`)
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE active
		ORDER BY created_at ASC
	`)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, category, active, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
	`, item.ID, item.Name, item.Description, item.Price, item.Category, item.Active, item.ImageURL)

	return err
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $1,
		    description = $2,
		    price = $3,
		    category = $4,
		    active = $5,
		    image_url = NULLIF($6, '')
		WHERE id = $7
	`, item.Name, item.Description, item.Price, item.Category, item.Active, item.ImageURL, item.ID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) ToggleActive(ctx context.Context, id string) (bool, error) {
	var active bool

	err := r.db.QueryRow(ctx, `
		UPDATE menu_items
		SET active = NOT active
		WHERE id = $1
		RETURNING active
	`, id).Scan(&active)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, err
	}

	return active, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE id = $1
	`, id)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
