package view

import (
	"github.com/shopspring/decimal"
)

type SuccessActions struct {
	OnClick func()
}

// Success confirms a placed order.
type Success struct {
	total   decimal.Decimal
	actions *SuccessActions
}

func NewSuccess(actions *SuccessActions) *Success {
	return &Success{total: decimal.Zero, actions: actions}
}

func (s *Success) SetTotal(total decimal.Decimal) {
	s.total = total
}

func (s *Success) Render(total decimal.Decimal) string {
	s.SetTotal(total)
	return s.String()
}

func (s *Success) String() string {
	return "Order placed\n" +
		"Spent " + FormatAmount(s.total) + " " + currencyLabel + "\n" +
		`[ Continue shopping ] type "continue"`
}

func (s *Success) HandleCommand(name, _ string) (bool, error) {
	if name != "continue" {
		return false, nil
	}
	if s.actions != nil && s.actions.OnClick != nil {
		s.actions.OnClick()
	}
	return true, nil
}

func (s *Success) Help() []string {
	return []string{helpLine("continue", "back to the catalog")}
}
