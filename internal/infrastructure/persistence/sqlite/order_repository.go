package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"weblarek/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save upserts the order and replaces its item list in one transaction.
func (r *OrderRepository) Save(ctx context.Context, placed *order.Placed) (err error) {
	if placed == nil {
		return fmt.Errorf("order is nil")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	o := placed.Order
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, payment, address, email, phone, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET payment = excluded.payment,
			address = excluded.address,
			email = excluded.email,
			phone = excluded.phone,
			total = excluded.total,
			created_at = excluded.created_at`,
		placed.ID, o.Payment, o.Address, o.Email, o.Phone, o.Total.String(), placed.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, placed.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	for i, id := range o.Items {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, position, product_id) VALUES (?, ?, ?)`,
			placed.ID, i, id,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Placed, error) {
	var (
		p       order.Placed
		total   string
		created int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, payment, address, email, phone, total, created_at
		FROM orders
		WHERE id = ?`, id,
	).Scan(&p.ID, &p.Order.Payment, &p.Order.Address, &p.Order.Email, &p.Order.Phone, &total, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if p.Order.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("decode total: %w", err)
	}
	p.CreatedAt = time.UnixMilli(created).UTC()

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM order_items WHERE order_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Order.Items = []string{}
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, err
		}
		p.Order.Items = append(p.Order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &p, nil
}
