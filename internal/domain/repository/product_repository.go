package repository

import (
	"context"

	"weblarek/internal/domain/product"
)

// ProductRepository is the read side of the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]product.Product, error)
	FindByID(ctx context.Context, id string) (*product.Product, error)
}
