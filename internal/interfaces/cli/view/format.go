package view

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"weblarek/internal/domain/product"
)

const (
	pricelessLabel = "Priceless"
	currencyLabel  = "synapses"
)

var printer = message.NewPrinter(language.English)

// SetLanguage switches number formatting to the conventions of tag.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// FormatAmount prints d with locale digit grouping.
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	return printer.Sprintf("%.2f", d.InexactFloat64())
}

// FormatPrice renders a price as "N synapses" or "Priceless".
func FormatPrice(p product.Price) string {
	if !p.Valid() {
		return pricelessLabel
	}
	return FormatAmount(p.Value()) + " " + currencyLabel
}

// padRight fits s into width terminal cells.
func padRight(s string, width int) string {
	s = truncate(s, width)
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + "…"
}

func rule(width int) string {
	return strings.Repeat("-", width)
}
