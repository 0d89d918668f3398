package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"weblarek/internal/domain/product"
)

//go:embed catalog.json
var seedCatalog []byte

// ProductRepository serves a fixed catalog. It is read-only after construction.
type ProductRepository struct {
	items []product.Product
	byID  map[string]int
}

func NewProductRepository(items []product.Product) *ProductRepository {
	r := &ProductRepository{
		items: make([]product.Product, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(r.items, items)
	for i, p := range r.items {
		r.byID[p.ID] = i
	}
	return r
}

// LoadProductRepository reads a catalog in the GET /product format from path,
// or the built-in catalog when path is empty.
func LoadProductRepository(path string) (*ProductRepository, error) {
	data := seedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}

	var resp product.ListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, p := range resp.Items {
		if p.ID == "" || p.Title == "" {
			return nil, fmt.Errorf("catalog item %q: %w", p.ID, product.ErrMissingField)
		}
	}
	return NewProductRepository(resp.Items), nil
}

func (r *ProductRepository) List(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	p := r.items[i]
	return &p, nil
}
