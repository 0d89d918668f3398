package view

import (
	"fmt"
	"strings"

	"weblarek/internal/domain/product"
)

// CardActions configures what a click on the card does.
type CardActions struct {
	OnClick func()
}

// CardData is everything a card template can show.
type CardData struct {
	ID          string
	Title       string
	Price       product.Price
	Description string
	Category    string
	Image       string
	Index       int
	ButtonTitle string
}

// CardFromProduct fills the product part of CardData.
func CardFromProduct(p *product.Product) CardData {
	return CardData{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
}

// Card renders one product through one of the card templates.
type Card struct {
	name    string
	data    CardData
	actions *CardActions
}

func NewCard(name string, actions *CardActions) (*Card, error) {
	if templates.Lookup(name) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	return &Card{name: name, actions: actions}, nil
}

func (c *Card) SetID(id string) {
	c.data.ID = id
}

func (c *Card) SetTitle(title string) {
	c.data.Title = title
}

func (c *Card) SetPrice(price product.Price) {
	c.data.Price = price
}

func (c *Card) SetDescription(text string) {
	c.data.Description = text
}

func (c *Card) SetCategory(category string) {
	c.data.Category = category
}

func (c *Card) SetImage(url string) {
	c.data.Image = url
}

func (c *Card) SetIndex(i int) {
	c.data.Index = i
}

func (c *Card) SetButtonTitle(title string) {
	c.data.ButtonTitle = title
}

func (c *Card) ID() string {
	return c.data.ID
}

func (c *Card) Data() CardData {
	return c.data
}

// Disabled reports a purchase button that cannot be pressed: the product has no price.
func (c *Card) Disabled() bool {
	return c.name == TemplatePreview && !c.data.Price.Valid()
}

// Click runs the configured action.
func (c *Card) Click() error {
	if c.Disabled() {
		return ErrDisabled
	}
	if c.actions != nil && c.actions.OnClick != nil {
		c.actions.OnClick()
	}
	return nil
}

// Render applies data and returns the fragment.
func (c *Card) Render(data CardData) string {
	c.data = data
	return c.String()
}

func (c *Card) String() string {
	var b strings.Builder
	err := templates.ExecuteTemplate(&b, c.name, struct {
		CardData
		PriceText string
		Disabled  bool
	}{
		CardData:  c.data,
		PriceText: FormatPrice(c.data.Price),
		Disabled:  c.Disabled(),
	})
	if err != nil {
		return fmt.Sprintf("<%s: %v>", c.name, err)
	}
	return b.String()
}

// HandleCommand lets a preview card be bought or returned from the modal.
func (c *Card) HandleCommand(name, _ string) (bool, error) {
	if c.name != TemplatePreview || (name != "toggle" && name != "buy") {
		return false, nil
	}
	return true, c.Click()
}

func (c *Card) Help() []string {
	if c.name != TemplatePreview {
		return nil
	}
	return []string{helpLine("toggle", "put into or take out of the basket")}
}
