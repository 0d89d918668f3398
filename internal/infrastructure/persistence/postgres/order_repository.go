package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"weblarek/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Migrate creates the order tables.
func (r *OrderRepository) Migrate(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			payment TEXT NOT NULL,
			address TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			total NUMERIC NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			position INT NOT NULL,
			product_id TEXT NOT NULL,
			PRIMARY KEY (order_id, position)
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

func (r *OrderRepository) Save(ctx context.Context, placed *order.Placed) error {
	if placed == nil {
		return fmt.Errorf("order is nil")
	}

	const query = `
		INSERT INTO orders (id, payment, address, email, phone, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET payment = EXCLUDED.payment,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			total = EXCLUDED.total,
			created_at = EXCLUDED.created_at;
	`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		o := placed.Order
		if _, err := tx.Exec(ctx, query,
			placed.ID,
			o.Payment,
			o.Address,
			o.Email,
			o.Phone,
			o.Total.String(),
			placed.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, placed.ID); err != nil {
			return fmt.Errorf("clear order items: %w", err)
		}

		batch := &pgx.Batch{}
		for i, id := range o.Items {
			batch.Queue(`INSERT INTO order_items (order_id, position, product_id) VALUES ($1, $2, $3)`, placed.ID, i, id)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Placed, error) {
	const query = `
		SELECT id, payment, address, email, phone, total::TEXT, created_at
		FROM orders
		WHERE id = $1;
	`
	var (
		p     order.Placed
		total string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Order.Payment,
		&p.Order.Address,
		&p.Order.Email,
		&p.Order.Phone,
		&total,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if p.Order.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("decode total: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT product_id FROM order_items WHERE order_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	p.Order.Items = items
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}
