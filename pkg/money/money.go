// Package money formats whole-rupiah amounts for receipts and displays.
// Prices in this system are integer rupiah; there are no fractional values.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Format renders an amount with Indonesian digit grouping, e.g. 12345 -> "12.345".
func Format(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// FormatRupiah renders an amount with the "Rp" prefix, e.g. 12345 -> "Rp 12.345".
func FormatRupiah(amount int64) string {
	return "Rp " + Format(amount)
}
