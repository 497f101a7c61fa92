// Package currency renders lempira amounts for the es-HN locale. It is a
// presentation adapter: calculation code keeps decimal values and only
// the response layer formats them.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-HN"))

// Lempiras formats an amount as a localized lempira string with thousands
// grouping and exactly two decimal places, e.g. "L 12,345.67".
func Lempiras(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	return printer.Sprintf("L %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Plain formats an amount with two decimal places and no currency symbol
// or grouping, for tabular output such as the payroll sheet PDF.
func Plain(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
