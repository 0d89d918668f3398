package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the API.
const (
	PaymentOnline = "online"
	PaymentCard   = "card"
	PaymentCash   = "cash"
)

// Field names an editable order attribute. Values match the form input names.
type Field string

const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// DeliveryFields are edited on the first checkout step, ContactFields on the second.
var (
	DeliveryFields = []Field{FieldPayment, FieldAddress}
	ContactFields  = []Field{FieldEmail, FieldPhone}
)

// Order is the checkout in progress on the client and the request body of POST /order.
type Order struct {
	Payment string          `json:"payment"`
	Address string          `json:"address"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Total   decimal.Decimal `json:"total"`
	Items   []string        `json:"items"`
}

// New returns an order in its default state.
func New() Order {
	return Order{
		Payment: PaymentOnline,
		Total:   decimal.Zero,
		Items:   []string{},
	}
}

// Get returns the value of a text field.
func (o *Order) Get(field Field) string {
	switch field {
	case FieldPayment:
		return o.Payment
	case FieldAddress:
		return o.Address
	case FieldEmail:
		return o.Email
	case FieldPhone:
		return o.Phone
	}
	return ""
}

// Set assigns a text field; unknown fields are rejected.
func (o *Order) Set(field Field, value string) error {
	switch field {
	case FieldPayment:
		o.Payment = value
	case FieldAddress:
		o.Address = value
	case FieldEmail:
		o.Email = value
	case FieldPhone:
		o.Phone = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	items := make([]string, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// Result is the API answer to a placed order.
type Result struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// Placed is an accepted order as stored by the API.
type Placed struct {
	ID        string
	Order     Order
	CreatedAt time.Time
}

func NewPlaced(id string, o Order) (*Placed, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	if len(o.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	return &Placed{
		ID:        id,
		Order:     o.Clone(),
		CreatedAt: time.Now().UTC(),
	}, nil
}
