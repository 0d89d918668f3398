package avro

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"weblarek/internal/domain/order"
)

// OrderCodec encodes placed orders as OrderPlaced records.
type OrderCodec struct {
	enc *Encoder
}

func NewOrderCodec() (*OrderCodec, error) {
	enc, err := NewEncoder(OrderPlacedSchema)
	if err != nil {
		return nil, err
	}
	return &OrderCodec{enc: enc}, nil
}

func (c *OrderCodec) Encode(p *order.Placed) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("order is nil")
	}
	return c.enc.EncodeNative(ToOrderPlacedNative(p))
}

func (c *OrderCodec) Decode(binary []byte) (*order.Placed, error) {
	native, err := c.enc.DecodeNative(binary)
	if err != nil {
		return nil, err
	}
	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("avro record has type %T", native)
	}
	return FromOrderPlacedNative(record)
}

// ToOrderPlacedNative builds the goavro native form of p.
func ToOrderPlacedNative(p *order.Placed) map[string]any {
	items := make([]any, 0, len(p.Order.Items))
	for _, id := range p.Order.Items {
		items = append(items, id)
	}
	return map[string]any{
		"id":         p.ID,
		"payment":    p.Order.Payment,
		"address":    p.Order.Address,
		"email":      p.Order.Email,
		"phone":      p.Order.Phone,
		"total":      p.Order.Total.String(),
		"items":      items,
		"created_at": p.CreatedAt.UnixMilli(),
	}
}

// FromOrderPlacedNative is the inverse of ToOrderPlacedNative.
func FromOrderPlacedNative(record map[string]any) (*order.Placed, error) {
	str := func(key string) (string, error) {
		s, ok := record[key].(string)
		if !ok {
			return "", fmt.Errorf("field %s: expected string, got %T", key, record[key])
		}
		return s, nil
	}

	var (
		p   order.Placed
		err error
	)
	if p.ID, err = str("id"); err != nil {
		return nil, err
	}
	if p.Order.Payment, err = str("payment"); err != nil {
		return nil, err
	}
	if p.Order.Address, err = str("address"); err != nil {
		return nil, err
	}
	if p.Order.Email, err = str("email"); err != nil {
		return nil, err
	}
	if p.Order.Phone, err = str("phone"); err != nil {
		return nil, err
	}

	total, err := str("total")
	if err != nil {
		return nil, err
	}
	if p.Order.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("field total: %w", err)
	}

	raw, ok := record["items"].([]any)
	if !ok {
		return nil, fmt.Errorf("field items: expected array, got %T", record["items"])
	}
	p.Order.Items = make([]string, 0, len(raw))
	for _, v := range raw {
		id, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("field items: expected string, got %T", v)
		}
		p.Order.Items = append(p.Order.Items, id)
	}

	millis, ok := record["created_at"].(int64)
	if !ok {
		return nil, fmt.Errorf("field created_at: expected long, got %T", record["created_at"])
	}
	p.CreatedAt = time.UnixMilli(millis).UTC()

	return &p, nil
}
