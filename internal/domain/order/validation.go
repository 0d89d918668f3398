package order

import (
	"regexp"
	"sort"
	"strings"
)

// Messages shown next to form fields.
const (
	MsgAddressRequired = "Address is required"
	MsgAddressInvalid  = "Address is invalid"
	MsgPaymentInvalid  = "Choose a payment method"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Email is invalid"
	MsgPhoneRequired   = "Phone is required"
	MsgPhoneInvalid    = "Phone is invalid"
	MsgPhoneFormat     = "Phone format is not recognized"
)

var (
	addressPattern    = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z0-9\s/.,-]{10,}$`)
	emailPattern      = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneInputPattern = regexp.MustCompile(`^(\+?7|8)?[\s-]?(\(?\d{3}\)?)[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`)
	phoneCanonical    = regexp.MustCompile(`^\+7\d{10}$`)
	phoneStrip        = regexp.MustCompile(`[^+\d]`)
)

// FormErrors maps an order field to the message describing what is wrong with it.
type FormErrors map[Field]string

// Valid reports whether there are no messages.
func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// Messages returns the messages for fields, in that order, skipping valid ones.
func (e FormErrors) Messages(fields ...Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if msg, ok := e[f]; ok {
			out = append(out, msg)
		}
	}
	return out
}

func (e FormErrors) String() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[Field(k)])
	}
	return strings.Join(parts, "; ")
}

// NormalizePhone strips everything but digits and a plus sign and rewrites a leading 8 as +7.
func NormalizePhone(raw string) string {
	phone := phoneStrip.ReplaceAllString(raw, "")
	if strings.HasPrefix(phone, "8") {
		phone = "+7" + phone[1:]
	}
	return phone
}

// ValidatePayment accepts the methods the API knows.
func ValidatePayment(payment string) bool {
	switch payment {
	case PaymentOnline, PaymentCard, PaymentCash:
		return true
	}
	return false
}

// ValidateDelivery checks the first checkout step.
func ValidateDelivery(o Order) FormErrors {
	errs := FormErrors{}
	if !ValidatePayment(o.Payment) {
		errs[FieldPayment] = MsgPaymentInvalid
	}
	switch {
	case o.Address == "":
		errs[FieldAddress] = MsgAddressRequired
	case !addressPattern.MatchString(o.Address):
		errs[FieldAddress] = MsgAddressInvalid
	}
	return errs
}

// ValidateContact checks the second checkout step. On success the returned
// phone is the canonical +7XXXXXXXXXX form of o.Phone.
func ValidateContact(o Order) (FormErrors, string) {
	errs := FormErrors{}
	switch {
	case o.Email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(o.Email):
		errs[FieldEmail] = MsgEmailInvalid
	}

	phone := NormalizePhone(o.Phone)
	switch {
	case phone == "":
		errs[FieldPhone] = MsgPhoneRequired
	case !phoneCanonical.MatchString(phone):
		errs[FieldPhone] = MsgPhoneInvalid
	case !phoneInputPattern.MatchString(o.Phone):
		errs[FieldPhone] = MsgPhoneFormat
	}
	if _, bad := errs[FieldPhone]; bad {
		return errs, o.Phone
	}
	return errs, phone
}

// Validate runs both steps; used where the whole order arrives at once.
func Validate(o Order) FormErrors {
	errs := ValidateDelivery(o)
	contact, _ := ValidateContact(o)
	for k, v := range contact {
		errs[k] = v
	}
	return errs
}
