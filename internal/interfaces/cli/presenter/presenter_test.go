package presenter

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weblarek/internal/application/appstate"
	"weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
	"weblarek/internal/event"
	"weblarek/internal/interfaces/cli/view"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) FetchProductList(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockAPI) SubmitOrder(ctx context.Context, o order.Order) (*order.Result, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Result), args.Error(1)
}

func catalogFixture() []product.Product {
	return []product.Product{
		{ID: "hour", Title: "+1 час в сутках", Price: product.NewPrice(750), Category: "софт-скил"},
		{ID: "hex", Title: "HEX-леденец", Price: product.NewPrice(1450), Category: "другое"},
		{ID: "timer", Title: "Мамка-таймер", Price: product.NoPrice(), Category: "софт-скил"},
	}
}

type fixture struct {
	ctx       context.Context
	api       *MockAPI
	state     *appstate.AppState
	presenter *Presenter
	events    []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := event.NewEmitter()
	f := &fixture{ctx: context.Background(), api: new(MockAPI)}
	bus.OnAll(func(data any) {
		f.events = append(f.events, data.(event.Envelope).Name)
	})
	f.state = appstate.New(bus)
	f.presenter = New(bus, f.state, f.api, nil)

	f.api.On("FetchProductList", f.ctx).Return(catalogFixture(), nil).Once()
	require.NoError(t, f.presenter.Start(f.ctx))
	return f
}

// run routes a command the way the terminal does.
func (f *fixture) run(t *testing.T, name, arg string) error {
	t.Helper()
	modal := f.presenter.Modal()
	var owners []view.Commander
	if modal.IsOpen() {
		if c, ok := modal.Content().(view.Commander); ok {
			owners = append(owners, c)
		}
		owners = append(owners, modal)
	}
	owners = append(owners, f.presenter.Page())

	for _, c := range owners {
		if handled, err := c.HandleCommand(name, arg); handled {
			return err
		}
	}
	t.Fatalf("command %q was not handled", name)
	return nil
}

func TestPresenter_StartRendersCatalog(t *testing.T) {
	f := newFixture(t)

	page := f.presenter.Page().String()
	assert.Contains(t, page, "HEX-леденец")
	assert.Contains(t, page, "Priceless")
	assert.Contains(t, page, "basket: 0")
	assert.Contains(t, f.events, event.ItemsChanged)
}

func TestPresenter_StartFailure(t *testing.T) {
	bus := event.NewEmitter()
	api := new(MockAPI)
	api.On("FetchProductList", mock.Anything).Return(nil, errors.New("connection refused"))

	p := New(bus, appstate.New(bus), api, nil)

	err := p.Start(context.Background())
	assert.ErrorContains(t, err, "load catalog")
	assert.Contains(t, p.Page().String(), "No products available")
}

func TestPresenter_PreviewToggle(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "open", "2"))
	modal := f.presenter.Modal()
	require.True(t, modal.IsOpen())
	assert.True(t, f.presenter.Page().Locked())
	assert.Equal(t, "hex", f.state.Preview())
	assert.Contains(t, modal.String(), ButtonBuy)

	require.NoError(t, f.run(t, "toggle", ""))
	assert.True(t, f.state.InBasket("hex"))
	assert.Equal(t, 1, f.presenter.Page().Counter())
	assert.Contains(t, modal.String(), ButtonRemove)

	require.NoError(t, f.run(t, "toggle", ""))
	assert.False(t, f.state.InBasket("hex"))
	assert.Contains(t, modal.String(), ButtonBuy)

	require.NoError(t, f.run(t, "close", ""))
	assert.False(t, f.presenter.Page().Locked())
}

func TestPresenter_PricelessCannotBeBought(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "open", "3"))
	assert.Contains(t, f.presenter.Modal().String(), ButtonUnavailable)

	err := f.run(t, "toggle", "")
	assert.ErrorIs(t, err, view.ErrDisabled)
	assert.Empty(t, f.state.Basket())
}

func TestPresenter_BasketRemove(t *testing.T) {
	f := newFixture(t)
	items := f.state.Catalog()
	f.state.AddToBasket(items[0])
	f.state.AddToBasket(items[1])

	require.NoError(t, f.run(t, "basket", ""))
	text := f.presenter.Modal().String()
	assert.Contains(t, text, "1. +1 час в сутках")
	assert.Contains(t, text, "2,200 synapses")

	require.NoError(t, f.run(t, "remove", "1"))
	assert.Equal(t, []string{"hex"}, f.state.Order().Items)
	assert.Contains(t, f.presenter.Modal().String(), "1. HEX-леденец")
	assert.Equal(t, 1, f.presenter.Page().Counter())
}

func TestPresenter_Checkout(t *testing.T) {
	f := newFixture(t)
	items := f.state.Catalog()
	f.state.AddToBasket(items[0])
	f.state.AddToBasket(items[1])

	require.NoError(t, f.run(t, "basket", ""))
	require.NoError(t, f.run(t, "order", ""))

	err := f.run(t, "next", "")
	assert.ErrorIs(t, err, view.ErrInvalidForm)

	require.NoError(t, f.run(t, "cash", ""))
	require.NoError(t, f.run(t, "address", "Moscow"))
	assert.Contains(t, f.presenter.Modal().String(), order.MsgAddressInvalid)

	require.NoError(t, f.run(t, "address", "Москва, ул. Ленина, 1"))
	assert.NotContains(t, f.presenter.Modal().String(), order.MsgAddressInvalid)
	require.NoError(t, f.run(t, "next", ""))

	require.NoError(t, f.run(t, "email", "buyer@example.com"))
	require.NoError(t, f.run(t, "phone", "89261234567"))

	f.api.On("SubmitOrder", f.ctx, mock.MatchedBy(func(o order.Order) bool {
		return o.Payment == order.PaymentCash &&
			o.Phone == "+79261234567" &&
			o.Total.Equal(decimal.NewFromInt(2200)) &&
			assert.ObjectsAreEqual([]string{"hour", "hex"}, o.Items)
	})).Return(&order.Result{ID: "order-1", Total: decimal.NewFromInt(2200)}, nil).Once()

	require.NoError(t, f.run(t, "pay", ""))

	assert.Contains(t, f.presenter.Modal().String(), "Spent 2,200 synapses")
	assert.Empty(t, f.state.Basket())
	assert.Equal(t, 0, f.presenter.Page().Counter())
	assert.Equal(t, order.New(), f.state.Order())
	assert.Contains(t, f.events, event.OrderPlaced)

	require.NoError(t, f.run(t, "continue", ""))
	assert.False(t, f.presenter.Modal().IsOpen())
	f.api.AssertExpectations(t)
}

func TestPresenter_CheckoutFailureKeepsBasket(t *testing.T) {
	f := newFixture(t)
	f.state.AddToBasket(f.state.Catalog()[0])

	require.NoError(t, f.run(t, "basket", ""))
	require.NoError(t, f.run(t, "order", ""))
	require.NoError(t, f.run(t, "address", "Москва, ул. Ленина, 1"))
	require.NoError(t, f.run(t, "next", ""))
	require.NoError(t, f.run(t, "email", "buyer@example.com"))
	require.NoError(t, f.run(t, "phone", "+7 926 123 45 67"))

	f.api.On("SubmitOrder", f.ctx, mock.Anything).Return(nil, errors.New("api status 500")).Once()

	require.NoError(t, f.run(t, "pay", ""))

	assert.Contains(t, f.events, event.OrderFailed)
	assert.Len(t, f.state.Basket(), 1)
	assert.Contains(t, f.presenter.Modal().String(), "Contacts")
}
