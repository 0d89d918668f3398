package catalog

import (
	"context"
	"fmt"

	"weblarek/internal/domain/product"
	"weblarek/internal/domain/repository"
)

// Service answers the catalog endpoints.
type Service struct {
	repo repository.ProductRepository
}

func NewService(repo repository.ProductRepository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog in the GET /product envelope.
func (s *Service) List(ctx context.Context) (*product.ListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if items == nil {
		items = []product.Product{}
	}
	return &product.ListResponse{Total: len(items), Items: items}, nil
}

// Get returns one product; unknown ids wrap product.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*product.Product, error) {
	if id == "" {
		return nil, product.ErrMissingField
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}
