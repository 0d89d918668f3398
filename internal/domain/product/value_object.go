package product

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a nullable amount of synapses. The zero value is "priceless".
type Price struct {
	value decimal.NullDecimal
}

func NewPrice(value int64) Price {
	return Price{value: decimal.NewNullDecimal(decimal.NewFromInt(value))}
}

func NewPriceFromDecimal(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{value: decimal.NewNullDecimal(value)}, nil
}

// NoPrice is the price of items that cannot be bought.
func NoPrice() Price {
	return Price{}
}

func (p Price) Valid() bool {
	return p.value.Valid
}

// Value returns the amount, zero when the price is absent.
func (p Price) Value() decimal.Decimal {
	if !p.value.Valid {
		return decimal.Zero
	}
	return p.value.Decimal
}

func (p Price) Equal(other Price) bool {
	if p.Valid() != other.Valid() {
		return false
	}
	return p.Value().Equal(other.Value())
}

func (p Price) String() string {
	if !p.value.Valid {
		return "null"
	}
	return p.value.Decimal.String()
}

// MarshalJSON writes a bare JSON number or null, as the Web-Larek API does.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = NoPrice()
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	price, err := NewPriceFromDecimal(d)
	if err != nil {
		return err
	}
	*p = price
	return nil
}
