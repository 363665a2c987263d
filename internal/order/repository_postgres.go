package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"lanchonete/internal/db"
)

type PostgresRepository struct {
	db db.Pool
}

func NewPostgresRepository(db db.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	change := decimal.NullDecimal{}
	if o.ChangeAmount != nil {
		change = decimal.NewNullDecimal(*o.ChangeAmount)
	}

	// created_at is assigned by the database at write time
	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, items, customer_name, address, contact,
			payment_method, change_amount, status, subtotal, final_total
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, o.ID, items, o.CustomerName, o.Address, o.Contact,
		o.PaymentMethod, change, o.Status, o.Subtotal, o.FinalTotal,
	).Scan(&o.CreatedAt)
}

const orderColumns = `
	id, items, customer_name, address, contact,
	payment_method, change_amount, status, subtotal, final_total, created_at
`

func scanOrder(row pgx.Row) (*Order, error) {
	o := &Order{}

	var items []byte
	var change decimal.NullDecimal

	err := row.Scan(
		&o.ID,
		&items,
		&o.CustomerName,
		&o.Address,
		&o.Contact,
		&o.PaymentMethod,
		&change,
		&o.Status,
		&o.Subtotal,
		&o.FinalTotal,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}

	if change.Valid {
		o.ChangeAmount = &change.Decimal
	}

	return o, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return o, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`, status, id)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
