package event

import "regexp"

// Storefront event names.
const (
	ModalOpen        = "modal:open"
	ModalClose       = "modal:close"
	ItemsChanged     = "items:changed"
	CounterChanged   = "counter:changed"
	CardSelect       = "card:select"
	PreviewChanged   = "preview:changed"
	ProductToggle    = "product:toggle"
	ProductAdd       = "product:add"
	ProductDelete    = "product:delete"
	BasketChanged    = "basket:changed"
	BasketOpen       = "basket:open"
	OrderOpen        = "order:open"
	FormErrorsChange = "formErrors:change"
	DeliveryReady    = "delivery:ready"
	ContactReady     = "contact:ready"
	OrderSubmit      = "order:submit"
	ContactsSubmit   = "contacts:submit"
	OrderPlaced      = "order:placed"
	OrderFailed      = "order:failed"
	SuccessClose     = "success:close"
)

// Field change events are emitted as "<form>.<field>:change".
var (
	OrderFieldChange    = regexp.MustCompile(`^order\..*:change$`)
	ContactsFieldChange = regexp.MustCompile(`^contacts\..*:change$`)
)

// FieldChangeName builds the event a form emits when one of its inputs changes.
func FieldChangeName(form, field string) string {
	return form + "." + field + ":change"
}

// SubmitName builds the event a form emits on submit.
func SubmitName(form string) string {
	return form + ":submit"
}
