package core

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders amount with thousands separators, prefixed by symbol: $245,800.
func FormatAmount(symbol string, amount float64) string {
	return symbol + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatPercent renders v with one decimal: 49.2%.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Round rounds v to n decimals.
func Round(v float64, n int) float64 {
	p := math.Pow10(n)
	return math.Round(v*p) / p
}
