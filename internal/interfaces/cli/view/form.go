package view

import (
	"fmt"
	"strings"

	"weblarek/internal/application/appstate"
	"weblarek/internal/domain/order"
	"weblarek/internal/event"
)

// FormState is what the orchestration layer pushes into a form.
type FormState struct {
	Valid  bool
	Errors []string
}

// Form is a named set of text inputs with a submit button. Typing into an
// input emits "<form>.<field>:change"; submit emits "<form>:submit".
type Form struct {
	events  event.Events
	name    string
	title   string
	submit  string
	fields  []order.Field
	choices map[order.Field][]string
	values  map[order.Field]string
	valid   bool
	errors  string
}

func newForm(events event.Events, name, title, submit string, fields ...order.Field) *Form {
	return &Form{
		events:  events,
		name:    name,
		title:   title,
		submit:  submit,
		fields:  fields,
		choices: make(map[order.Field][]string),
		values:  make(map[order.Field]string),
	}
}

func (f *Form) Name() string {
	return f.name
}

func (f *Form) Valid() bool {
	return f.valid
}

func (f *Form) SetValid(valid bool) {
	f.valid = valid
}

func (f *Form) SetErrors(msg string) {
	f.errors = msg
}

func (f *Form) Errors() string {
	return f.errors
}

// SetValue fills an input without emitting anything.
func (f *Form) SetValue(field order.Field, value string) {
	f.values[field] = value
}

func (f *Form) Value(field order.Field) string {
	return f.values[field]
}

// Reset empties the inputs and disables submit.
func (f *Form) Reset() {
	f.values = make(map[order.Field]string)
	f.valid = false
	f.errors = ""
}

// Input records value and announces it on the bus.
func (f *Form) Input(field order.Field, value string) {
	f.values[field] = value
	f.events.Emit(event.FieldChangeName(f.name, string(field)), appstate.FieldChange{
		Field: field,
		Value: value,
	})
}

// Submit emits the submit event of a valid form.
func (f *Form) Submit() error {
	if !f.valid {
		if f.errors != "" {
			return fmt.Errorf("%w: %s", ErrInvalidForm, f.errors)
		}
		return ErrInvalidForm
	}
	f.events.Emit(event.SubmitName(f.name), nil)
	return nil
}

func (f *Form) Render(state FormState) string {
	f.SetValid(state.Valid)
	f.SetErrors(strings.Join(state.Errors, "; "))
	return f.String()
}

func (f *Form) String() string {
	var b strings.Builder
	b.WriteString(f.title)
	b.WriteString("\n")
	for _, field := range f.fields {
		b.WriteString(padRight(string(field)+":", 16))
		if opts, ok := f.choices[field]; ok {
			parts := make([]string, 0, len(opts))
			for _, opt := range opts {
				mark := " "
				if f.values[field] == opt {
					mark = "x"
				}
				parts = append(parts, fmt.Sprintf("[%s] %s", mark, opt))
			}
			b.WriteString(strings.Join(parts, "  "))
		} else {
			b.WriteString(f.values[field])
		}
		b.WriteString("\n")
	}
	if f.errors != "" {
		b.WriteString("! ")
		b.WriteString(f.errors)
		b.WriteString("\n")
	}
	label := strings.ToUpper(f.submit[:1]) + f.submit[1:]
	if f.valid {
		fmt.Fprintf(&b, "[ %s ] type %q", label, f.submit)
	} else {
		fmt.Fprintf(&b, "[ %s ] unavailable", label)
	}
	return b.String()
}

// HandleCommand maps "<field> <value>", a choice name and the submit word.
func (f *Form) HandleCommand(name, arg string) (bool, error) {
	if name == f.submit {
		return true, f.Submit()
	}
	for field, opts := range f.choices {
		for _, opt := range opts {
			if name == opt {
				f.Input(field, opt)
				return true, nil
			}
		}
	}
	for _, field := range f.fields {
		if _, choice := f.choices[field]; choice {
			continue
		}
		if name == string(field) {
			f.Input(field, strings.TrimSpace(arg))
			return true, nil
		}
	}
	return false, nil
}

func (f *Form) Help() []string {
	lines := make([]string, 0, len(f.fields)+1)
	for _, field := range f.fields {
		if opts, ok := f.choices[field]; ok {
			lines = append(lines, helpLine(strings.Join(opts, " | "), "choose "+string(field)))
			continue
		}
		lines = append(lines, helpLine(string(field)+" TEXT", "set "+string(field)))
	}
	return append(lines, helpLine(f.submit, "continue when the form is valid"))
}

// DeliveryForm is the first checkout step: payment method and address.
type DeliveryForm struct {
	*Form
}

func NewDeliveryForm(events event.Events) *DeliveryForm {
	f := newForm(events, "order", "Delivery", "next", order.FieldPayment, order.FieldAddress)
	f.choices[order.FieldPayment] = []string{order.PaymentCard, order.PaymentCash}
	return &DeliveryForm{Form: f}
}

// Payment is the method picked with the toggle, empty until one is chosen.
func (d *DeliveryForm) Payment() string {
	return d.Value(order.FieldPayment)
}

// ContactForm is the second checkout step: email and phone.
type ContactForm struct {
	*Form
}

func NewContactForm(events event.Events) *ContactForm {
	return &ContactForm{Form: newForm(events, "contacts", "Contacts", "pay", order.FieldEmail, order.FieldPhone)}
}
