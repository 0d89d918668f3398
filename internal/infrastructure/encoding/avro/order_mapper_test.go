package avro

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblarek/internal/domain/order"
)

func placedFixture(t *testing.T) *order.Placed {
	t.Helper()
	o := order.New()
	o.Payment = order.PaymentCash
	o.Address = "Москва, ул. Ленина, 1"
	o.Email = "buyer@example.com"
	o.Phone = "+79261234567"
	o.Total = decimal.RequireFromString("2200.5")
	o.Items = []string{"a", "b"}

	p, err := order.NewPlaced("order-1", o)
	require.NoError(t, err)
	p.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return p
}

func TestOrderCodec_EncodeDecode(t *testing.T) {
	codec, err := NewOrderCodec()
	require.NoError(t, err)

	in := placedFixture(t)
	binary, err := codec.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, binary)

	out, err := codec.Decode(binary)
	require.NoError(t, err)

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Order.Address, out.Order.Address)
	assert.Equal(t, in.Order.Items, out.Order.Items)
	assert.True(t, in.Order.Total.Equal(out.Order.Total))
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
}

func TestOrderCodec_EncodeNil(t *testing.T) {
	codec, err := NewOrderCodec()
	require.NoError(t, err)

	_, err = codec.Encode(nil)
	assert.Error(t, err)
}

func TestOrderCodec_DecodeGarbage(t *testing.T) {
	codec, err := NewOrderCodec()
	require.NoError(t, err)

	_, err = codec.Decode([]byte{0xff})
	assert.Error(t, err)
}

func TestFromOrderPlacedNative_BadTotal(t *testing.T) {
	record := ToOrderPlacedNative(placedFixture(t))
	record["total"] = "many"

	_, err := FromOrderPlacedNative(record)

	assert.ErrorContains(t, err, "field total")
}

func TestEncoder_JSON(t *testing.T) {
	enc, err := NewEncoder(OrderPlacedSchema)
	require.NoError(t, err)

	binary, err := enc.EncodeJSON([]byte(`{"id":"x","payment":"card","address":"a","email":"e","phone":"p","total":"10","items":["a"],"created_at":1}`))
	require.NoError(t, err)

	text, err := enc.DecodeJSON(binary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","payment":"card","address":"a","email":"e","phone":"p","total":"10","items":["a"],"created_at":1}`, string(text))

	_, err = enc.EncodeJSON([]byte(`[1,2]`))
	assert.Error(t, err)
}
