package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is prefixed to every money amount.
const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// Money renders v with two decimals, digit grouping and the currency
// symbol, e.g. ₹1,234.50 or -₹12.00.
func Money(v float64) string {
	if v < 0 {
		return "-" + CurrencySymbol + printer.Sprintf("%.2f", -v)
	}
	return CurrencySymbol + printer.Sprintf("%.2f", v)
}

// Number renders v with two decimals and digit grouping.
func Number(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Percent renders v as a signed percentage with two decimals.
func Percent(v float64) string {
	if v < 0 {
		return "-" + printer.Sprintf("%.2f", -v) + "%"
	}
	return "+" + printer.Sprintf("%.2f", v) + "%"
}
