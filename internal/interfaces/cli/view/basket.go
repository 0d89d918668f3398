package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"weblarek/internal/event"
)

type BasketData struct {
	Items []*Card
	Total decimal.Decimal
}

// Basket lists the basket cards and the order total.
type Basket struct {
	events event.Events
	items  []*Card
	total  decimal.Decimal
}

func NewBasket(events event.Events) *Basket {
	return &Basket{events: events, total: decimal.Zero}
}

func (b *Basket) SetItems(cards []*Card) {
	b.items = cards
}

func (b *Basket) SetTotal(total decimal.Decimal) {
	b.total = total
}

// Disabled reports a checkout button that cannot be pressed.
func (b *Basket) Disabled() bool {
	return len(b.items) == 0
}

func (b *Basket) Render(data BasketData) string {
	b.SetItems(data.Items)
	b.SetTotal(data.Total)
	return b.String()
}

func (b *Basket) String() string {
	var sb strings.Builder
	sb.WriteString("Basket\n")
	if len(b.items) == 0 {
		sb.WriteString("Basket is empty\n")
	}
	for _, card := range b.items {
		sb.WriteString(card.String())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(padRight("Total:", 16))
	sb.WriteString(FormatAmount(b.total) + " " + currencyLabel + "\n")
	if b.Disabled() {
		sb.WriteString("[ Checkout ] unavailable")
	} else {
		sb.WriteString(`[ Checkout ] type "order"`)
	}
	return sb.String()
}

func (b *Basket) HandleCommand(name, arg string) (bool, error) {
	switch name {
	case "order":
		if b.Disabled() {
			return true, ErrDisabled
		}
		b.events.Emit(event.OrderOpen, nil)
		return true, nil
	case "remove":
		i, err := ParseIndex(arg, len(b.items))
		if err != nil {
			return true, err
		}
		return true, b.items[i].Click()
	}
	return false, nil
}

func (b *Basket) Help() []string {
	return []string{
		helpLine("remove N", "take item N out of the basket"),
		helpLine("order", "go to checkout"),
	}
}
