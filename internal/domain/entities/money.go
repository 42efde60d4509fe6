package entities

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var clpPrinter = message.NewPrinter(language.Spanish)

// FormatCLP renders a CLP amount the way the site shows prices: dollar sign
// plus dot-grouped thousands, e.g. 55000 -> "$55.000".
func FormatCLP(amount int) string {
	return clpPrinter.Sprintf("$%d", amount)
}
