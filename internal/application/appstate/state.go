package appstate

import (
	"github.com/shopspring/decimal"

	"weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
	"weblarek/internal/event"
)

// CatalogChange is the payload of items:changed.
type CatalogChange struct {
	Catalog []*product.Product
}

// FieldChange is the payload of "<form>.<field>:change" events.
type FieldChange struct {
	Field order.Field
	Value string
}

// AppState holds everything the storefront knows: the catalog, the basket, the
// order being checked out and the latest validation messages.
type AppState struct {
	Model

	catalog    []*product.Product
	basket     []*product.Product
	order      order.Order
	preview    string
	formErrors order.FormErrors
}

func New(events event.Events) *AppState {
	return &AppState{
		Model:      NewModel(events),
		order:      order.New(),
		formErrors: order.FormErrors{},
	}
}

func (s *AppState) SetCatalog(items []*product.Product) {
	s.catalog = items
	s.EmitChanges(event.ItemsChanged, CatalogChange{Catalog: s.Catalog()})
}

func (s *AppState) SetPreview(item *product.Product) {
	if item == nil {
		return
	}
	s.preview = item.ID
	s.EmitChanges(event.PreviewChanged, item)
}

// AddToBasket appends item unless it is already there or has no price.
func (s *AppState) AddToBasket(item *product.Product) {
	if !item.Purchasable() || s.InBasket(item.ID) {
		return
	}
	s.basket = append(s.basket, item)
	s.updateBasket()
}

// RemoveFromBasket drops item; removing something not in the basket changes nothing.
func (s *AppState) RemoveFromBasket(item *product.Product) {
	if item == nil || !s.InBasket(item.ID) {
		return
	}
	kept := make([]*product.Product, 0, len(s.basket)-1)
	for _, it := range s.basket {
		if it.ID != item.ID {
			kept = append(kept, it)
		}
	}
	s.basket = kept
	s.updateBasket()
}

func (s *AppState) ClearBasket() {
	s.basket = nil
	s.updateBasket()
}

// ClearOrder resets the order and the form messages to their defaults.
func (s *AppState) ClearOrder() {
	s.order = order.New()
	s.formErrors = order.FormErrors{}
	s.syncOrderWithBasket()
}

// updateBasket keeps order total and items in step with the basket, then
// announces the change.
func (s *AppState) updateBasket() {
	s.syncOrderWithBasket()
	basket := s.Basket()
	s.EmitChanges(event.CounterChanged, basket)
	s.EmitChanges(event.BasketChanged, basket)
}

func (s *AppState) syncOrderWithBasket() {
	items := make([]string, 0, len(s.basket))
	for _, it := range s.basket {
		items = append(items, it.ID)
	}
	s.order.Items = items
	s.order.Total = s.Total()
}

// SetDeliveryField updates payment or address and revalidates the delivery step.
func (s *AppState) SetDeliveryField(field order.Field, value string) error {
	if field != order.FieldPayment && field != order.FieldAddress {
		return order.ErrUnknownField
	}
	if err := s.order.Set(field, value); err != nil {
		return err
	}
	if s.ValidateDelivery() {
		s.events.Emit(event.DeliveryReady, s.Order())
	}
	return nil
}

// SetContactField updates email or phone and revalidates the contact step.
func (s *AppState) SetContactField(field order.Field, value string) error {
	if field != order.FieldEmail && field != order.FieldPhone {
		return order.ErrUnknownField
	}
	if err := s.order.Set(field, value); err != nil {
		return err
	}
	if s.ValidateContact() {
		s.events.Emit(event.ContactReady, s.Order())
	}
	return nil
}

// ValidateDelivery recomputes the delivery messages and always emits formErrors:change.
func (s *AppState) ValidateDelivery() bool {
	errs := order.ValidateDelivery(s.order)
	s.setFormErrors(errs)
	return errs.Valid()
}

// ValidateContact recomputes the contact messages and always emits formErrors:change.
// A valid phone is stored in its canonical form.
func (s *AppState) ValidateContact() bool {
	errs, phone := order.ValidateContact(s.order)
	if errs.Valid() {
		s.order.Phone = phone
	}
	s.setFormErrors(errs)
	return errs.Valid()
}

func (s *AppState) setFormErrors(errs order.FormErrors) {
	s.formErrors = errs
	s.events.Emit(event.FormErrorsChange, s.FormErrors())
}

/* ================= accessors ================= */

func (s *AppState) Catalog() []*product.Product {
	out := make([]*product.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *AppState) Basket() []*product.Product {
	out := make([]*product.Product, len(s.basket))
	copy(out, s.basket)
	return out
}

// Order returns a copy of the order in progress.
func (s *AppState) Order() order.Order {
	return s.order.Clone()
}

func (s *AppState) Preview() string {
	return s.preview
}

func (s *AppState) FormErrors() order.FormErrors {
	out := make(order.FormErrors, len(s.formErrors))
	for k, v := range s.formErrors {
		out[k] = v
	}
	return out
}

func (s *AppState) InBasket(id string) bool {
	for _, it := range s.basket {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Product looks an item up in the catalog.
func (s *AppState) Product(id string) (*product.Product, bool) {
	for _, it := range s.catalog {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Total is the sum of basket prices.
func (s *AppState) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.basket {
		total = total.Add(it.Price.Value())
	}
	return total
}
