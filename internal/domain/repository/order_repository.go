package repository

import (
	"context"

	"weblarek/internal/domain/order"
)

// OrderRepository stores accepted orders. FindByID returns (nil, nil) when the id is unknown.
type OrderRepository interface {
	Save(ctx context.Context, placed *order.Placed) error
	FindByID(ctx context.Context, id string) (*order.Placed, error)
}
