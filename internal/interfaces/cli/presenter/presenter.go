// Package presenter wires bus events to state changes and view re-renders.
package presenter

import (
	"context"
	"fmt"

	"weblarek/internal/application/appstate"
	"weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
	"weblarek/internal/event"
	"weblarek/internal/interfaces/cli/view"
	"weblarek/pkg/logger"
)

// Button titles of the preview card.
const (
	ButtonBuy         = "Buy"
	ButtonRemove      = "Remove from basket"
	ButtonUnavailable = "Unavailable"
)

// API is the part of the Web-Larek client the storefront needs.
type API interface {
	FetchProductList(ctx context.Context) ([]product.Product, error)
	SubmitOrder(ctx context.Context, o order.Order) (*order.Result, error)
}

type Presenter struct {
	ctx    context.Context
	events event.Events
	state  *appstate.AppState
	api    API
	log    logger.Logger

	page     *view.Page
	modal    *view.Modal
	basket   *view.Basket
	delivery *view.DeliveryForm
	contacts *view.ContactForm
	success  *view.Success
	preview  *view.Card
}

// New builds the views and subscribes every handler.
func New(events event.Events, state *appstate.AppState, api API, log logger.Logger) *Presenter {
	if log == nil {
		log = logger.NewNop()
	}
	p := &Presenter{
		ctx:      context.Background(),
		events:   events,
		state:    state,
		api:      api,
		log:      log,
		page:     view.NewPage(events),
		modal:    view.NewModal(events),
		basket:   view.NewBasket(events),
		delivery: view.NewDeliveryForm(events),
		contacts: view.NewContactForm(events),
	}
	p.success = view.NewSuccess(&view.SuccessActions{OnClick: func() {
		events.Emit(event.SuccessClose, nil)
	}})
	p.bind()
	return p
}

func (p *Presenter) Page() *view.Page {
	return p.page
}

func (p *Presenter) Modal() *view.Modal {
	return p.modal
}

// Start loads the catalog once. ctx also bounds later API calls.
func (p *Presenter) Start(ctx context.Context) error {
	p.ctx = ctx

	items, err := p.api.FetchProductList(ctx)
	if err != nil {
		p.log.Error("failed to load catalog", logger.Error(err))
		return fmt.Errorf("load catalog: %w", err)
	}

	catalog := make([]*product.Product, 0, len(items))
	for i := range items {
		catalog = append(catalog, &items[i])
	}
	p.log.Info("catalog loaded", logger.Int("items", len(catalog)))
	p.state.SetCatalog(catalog)
	return nil
}

func (p *Presenter) bind() {
	event.Handle(p.events, event.ItemsChanged, p.onItemsChanged)
	event.Handle(p.events, event.CardSelect, p.state.SetPreview)
	event.Handle(p.events, event.PreviewChanged, p.onPreviewChanged)
	event.Handle(p.events, event.ProductToggle, p.onProductToggle)
	event.Handle(p.events, event.ProductAdd, p.onProductAdd)
	event.Handle(p.events, event.ProductDelete, p.onProductDelete)
	p.events.On(event.BasketOpen, func(any) { p.modal.Render(view.ModalData{Content: p.basket}) })
	event.Handle(p.events, event.BasketChanged, p.onBasketChanged)
	event.Handle(p.events, event.CounterChanged, func(items []*product.Product) { p.page.SetCounter(len(items)) })
	p.events.On(event.OrderOpen, func(any) { p.onOrderOpen() })
	event.HandlePattern(p.events, event.OrderFieldChange, p.onDeliveryChange)
	event.HandlePattern(p.events, event.ContactsFieldChange, p.onContactChange)
	event.Handle(p.events, event.FormErrorsChange, p.onFormErrors)
	p.events.On(event.DeliveryReady, func(any) { p.delivery.SetValid(true) })
	p.events.On(event.ContactReady, func(any) { p.contacts.SetValid(true) })
	p.events.On(event.OrderSubmit, func(any) { p.onOrderSubmit() })
	p.events.On(event.ContactsSubmit, func(any) { p.onContactsSubmit() })
	p.events.On(event.SuccessClose, func(any) { p.modal.Close() })
	p.events.On(event.ModalOpen, func(any) { p.page.SetLocked(true) })
	p.events.On(event.ModalClose, func(any) {
		p.page.SetLocked(false)
		p.preview = nil
	})
}

func (p *Presenter) onItemsChanged(change appstate.CatalogChange) {
	cards := make([]*view.Card, 0, len(change.Catalog))
	for _, item := range change.Catalog {
		card, err := view.NewCard(view.TemplateCatalog, &view.CardActions{OnClick: func() {
			p.events.Emit(event.CardSelect, item)
		}})
		if err != nil {
			p.log.Error("failed to build catalog card", logger.Error(err))
			return
		}
		card.Render(view.CardFromProduct(item))
		cards = append(cards, card)
	}
	p.page.SetCatalog(cards)
}

func (p *Presenter) onPreviewChanged(item *product.Product) {
	card, err := view.NewCard(view.TemplatePreview, &view.CardActions{OnClick: func() {
		p.events.Emit(event.ProductToggle, item)
	}})
	if err != nil {
		p.log.Error("failed to build preview card", logger.Error(err))
		return
	}
	data := view.CardFromProduct(item)
	data.ButtonTitle = p.buttonTitle(item)
	card.Render(data)

	p.preview = card
	p.modal.Render(view.ModalData{Content: card})
}

func (p *Presenter) onProductToggle(item *product.Product) {
	if p.state.InBasket(item.ID) {
		p.events.Emit(event.ProductDelete, item)
	} else {
		p.events.Emit(event.ProductAdd, item)
	}
	if p.preview != nil && p.preview.ID() == item.ID {
		p.preview.SetButtonTitle(p.buttonTitle(item))
	}
}

func (p *Presenter) onProductAdd(item *product.Product) {
	p.state.AddToBasket(item)
}

func (p *Presenter) onProductDelete(item *product.Product) {
	p.state.RemoveFromBasket(item)
}

func (p *Presenter) onBasketChanged(items []*product.Product) {
	cards := make([]*view.Card, 0, len(items))
	for i, item := range items {
		card, err := view.NewCard(view.TemplateBasket, &view.CardActions{OnClick: func() {
			p.events.Emit(event.ProductDelete, item)
		}})
		if err != nil {
			p.log.Error("failed to build basket card", logger.Error(err))
			return
		}
		data := view.CardFromProduct(item)
		data.Index = i + 1
		card.Render(data)
		cards = append(cards, card)
	}
	p.basket.Render(view.BasketData{Items: cards, Total: p.state.Total()})
}

func (p *Presenter) onOrderOpen() {
	p.state.ClearOrder()
	p.delivery.Reset()
	p.delivery.Render(view.FormState{})
	p.modal.Render(view.ModalData{Content: p.delivery})
}

func (p *Presenter) onDeliveryChange(change appstate.FieldChange) {
	if err := p.state.SetDeliveryField(change.Field, change.Value); err != nil {
		p.log.Warn("rejected delivery field", logger.String("field", string(change.Field)), logger.Error(err))
	}
}

func (p *Presenter) onContactChange(change appstate.FieldChange) {
	if err := p.state.SetContactField(change.Field, change.Value); err != nil {
		p.log.Warn("rejected contact field", logger.String("field", string(change.Field)), logger.Error(err))
	}
}

// onFormErrors updates whichever checkout form is on screen.
func (p *Presenter) onFormErrors(errs order.FormErrors) {
	switch p.modal.Content() {
	case view.Fragment(p.delivery):
		msgs := errs.Messages(order.DeliveryFields...)
		p.delivery.Render(view.FormState{Valid: len(msgs) == 0, Errors: msgs})
	case view.Fragment(p.contacts):
		msgs := errs.Messages(order.ContactFields...)
		p.contacts.Render(view.FormState{Valid: len(msgs) == 0, Errors: msgs})
	}
}

func (p *Presenter) onOrderSubmit() {
	p.contacts.Reset()
	p.contacts.Render(view.FormState{})
	p.modal.Render(view.ModalData{Content: p.contacts})
}

func (p *Presenter) onContactsSubmit() {
	o := p.state.Order()
	result, err := p.api.SubmitOrder(p.ctx, o)
	if err != nil {
		p.log.Error("failed to submit order",
			logger.Int("items", len(o.Items)),
			logger.String("total", o.Total.String()),
			logger.Error(err),
		)
		p.events.Emit(event.OrderFailed, err)
		return
	}

	p.log.Info("order placed", logger.String("order_id", result.ID))
	p.success.Render(result.Total)
	p.modal.Render(view.ModalData{Content: p.success})
	p.state.ClearBasket()
	p.state.ClearOrder()
	p.events.Emit(event.OrderPlaced, result)
}

func (p *Presenter) buttonTitle(item *product.Product) string {
	switch {
	case !item.Purchasable():
		return ButtonUnavailable
	case p.state.InBasket(item.ID):
		return ButtonRemove
	default:
		return ButtonBuy
	}
}
