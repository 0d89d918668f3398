package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblarek/internal/domain/order"
)

func newRepo(t *testing.T) *OrderRepository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewOrderRepository(db)
}

func placed(t *testing.T, id string, items ...string) *order.Placed {
	t.Helper()
	o := order.New()
	o.Payment = order.PaymentCash
	o.Address = "Москва, ул. Ленина, 1"
	o.Email = "buyer@example.com"
	o.Phone = "+79261234567"
	o.Total = decimal.RequireFromString("2200.50")
	o.Items = items

	p, err := order.NewPlaced(id, o)
	require.NoError(t, err)
	p.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return p
}

func TestOrderRepository_SaveFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	in := placed(t, "id-1", "b", "a")
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Order.Address, out.Order.Address)
	assert.Equal(t, []string{"b", "a"}, out.Order.Items)
	assert.True(t, in.Order.Total.Equal(out.Order.Total))
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
}

func TestOrderRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Save(ctx, placed(t, "id-1", "a", "b", "c")))
	require.NoError(t, repo.Save(ctx, placed(t, "id-1", "d")))

	out, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, out.Order.Items)
}

func TestOrderRepository_Missing(t *testing.T) {
	repo := newRepo(t)

	out, err := repo.FindByID(context.Background(), "nope")

	assert.NoError(t, err)
	assert.Nil(t, out)
	assert.Error(t, repo.Save(context.Background(), nil))
}
