package product

import "errors"

var (
	ErrNotFound      = errors.New("product not found")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrMissingField  = errors.New("required field is missing")
)
