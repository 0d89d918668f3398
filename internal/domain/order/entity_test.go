package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	o := New()

	assert.Equal(t, PaymentOnline, o.Payment)
	assert.True(t, o.Total.IsZero())
	assert.NotNil(t, o.Items)
	assert.Empty(t, o.Items)
}

func TestOrder_SetGet(t *testing.T) {
	o := New()

	require.NoError(t, o.Set(FieldAddress, "Москва"))
	require.NoError(t, o.Set(FieldEmail, "a@b.ru"))
	assert.Equal(t, "Москва", o.Get(FieldAddress))
	assert.Equal(t, "a@b.ru", o.Get(FieldEmail))

	assert.ErrorIs(t, o.Set(Field("total"), "1"), ErrUnknownField)
	assert.Equal(t, "", o.Get(Field("total")))
}

func TestOrder_CloneDoesNotShareItems(t *testing.T) {
	o := New()
	o.Items = []string{"a", "b"}

	c := o.Clone()
	c.Items[0] = "z"

	assert.Equal(t, "a", o.Items[0])
}

func TestNewPlaced(t *testing.T) {
	o := New()
	o.Items = []string{"a"}
	o.Total = decimal.NewFromInt(750)

	p, err := NewPlaced("id-1", o)
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	_, err = NewPlaced("", o)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewPlaced("id-2", New())
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: FormErrors{FieldEmail: MsgEmailRequired}}

	assert.Equal(t, "invalid order: email: Email is required", err.Error())
}
