// file: internals/features/finance/estimates/service/currency.go
package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// locale dikunci en-US supaya output tidak ikut locale mesin.
var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// RoundHalfUp sama dengan Math.round: .5 selalu ke atas (-2.5 -> -2).
func RoundHalfUp(amount float64) int64 {
	return int64(math.Floor(amount + 0.5))
}

// FormatCurrency contoh: 123456 -> "$123,456", 98765.5 -> "$98,766".
func FormatCurrency(amount float64) string {
	n := RoundHalfUp(amount)
	if n < 0 {
		return "-$" + usdPrinter.Sprintf("%d", -n)
	}
	return "$" + usdPrinter.Sprintf("%d", n)
}
