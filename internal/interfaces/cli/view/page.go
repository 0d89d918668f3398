package view

import (
	"fmt"
	"strings"

	"weblarek/internal/event"
)

const screenWidth = 72

// PageData is the full state of the storefront page.
type PageData struct {
	Counter int
	Catalog []*Card
	Locked  bool
}

// Page is the main screen: header with the basket counter and the catalog.
type Page struct {
	events  event.Events
	counter int
	catalog []*Card
	locked  bool
}

func NewPage(events event.Events) *Page {
	return &Page{events: events}
}

func (p *Page) SetCounter(n int) {
	if n < 0 {
		n = 0
	}
	p.counter = n
}

func (p *Page) SetCatalog(cards []*Card) {
	p.catalog = cards
}

// SetLocked marks the page as covered by a modal; a locked page ignores commands.
func (p *Page) SetLocked(locked bool) {
	p.locked = locked
}

func (p *Page) Counter() int {
	return p.counter
}

func (p *Page) Locked() bool {
	return p.locked
}

func (p *Page) Render(data PageData) string {
	p.SetCounter(data.Counter)
	p.SetCatalog(data.Catalog)
	p.SetLocked(data.Locked)
	return p.String()
}

func (p *Page) String() string {
	var b strings.Builder
	basket := fmt.Sprintf("basket: %d", p.counter)
	b.WriteString(padRight("WEB-LAREK", screenWidth-len(basket)))
	b.WriteString(basket)
	b.WriteString("\n")
	b.WriteString(rule(screenWidth))
	b.WriteString("\n")

	if len(p.catalog) == 0 {
		b.WriteString("No products available\n")
		return b.String()
	}
	for i, card := range p.catalog {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, card.String())
	}
	return b.String()
}

func (p *Page) HandleCommand(name, arg string) (bool, error) {
	if p.locked {
		return false, nil
	}
	switch name {
	case "basket":
		p.events.Emit(event.BasketOpen, nil)
		return true, nil
	case "open":
		i, err := ParseIndex(arg, len(p.catalog))
		if err != nil {
			return true, err
		}
		return true, p.catalog[i].Click()
	}
	return false, nil
}

func (p *Page) Help() []string {
	if p.locked {
		return nil
	}
	return []string{
		helpLine("open N", "show product N"),
		helpLine("basket", "show the basket"),
	}
}
