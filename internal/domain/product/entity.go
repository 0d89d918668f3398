package product

import "strings"

// Product is a catalog item as served by the API. It is never mutated after fetch.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       Price  `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

func NewProduct(id, title, category string, price Price) (*Product, error) {
	if id == "" || title == "" {
		return nil, ErrMissingField
	}
	return &Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Category: category,
	}, nil
}

// Purchasable reports whether the product can go into a basket.
func (p *Product) Purchasable() bool {
	return p != nil && p.Price.Valid()
}

// WithImagePrefix returns a copy whose image path is resolved against prefix.
func (p Product) WithImagePrefix(prefix string) Product {
	if prefix == "" || strings.HasPrefix(p.Image, "http://") || strings.HasPrefix(p.Image, "https://") {
		return p
	}
	p.Image = prefix + p.Image
	return p
}

// ListResponse is the envelope of GET /product.
type ListResponse struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}
