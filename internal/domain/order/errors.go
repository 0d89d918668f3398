package order

import "errors"

var (
	ErrMissingField   = errors.New("required field is missing")
	ErrUnknownField   = errors.New("unknown order field")
	ErrEmptyOrder     = errors.New("order has no items")
	ErrInvalidPayment = errors.New("invalid payment method")
	ErrInvalidTotal   = errors.New("order total does not match items")
	ErrUnknownItem    = errors.New("order references an unknown product")
	ErrPricelessItem  = errors.New("order contains a product without a price")
	ErrDuplicateItem  = errors.New("order contains a product twice")
)

// ValidationError carries the per-field messages of a rejected order.
type ValidationError struct {
	Errors FormErrors
}

func (e *ValidationError) Error() string {
	return "invalid order: " + e.Errors.String()
}
