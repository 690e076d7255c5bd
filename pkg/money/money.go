// Package money formats Rupiah amounts the way the storefront displays them.
// Amounts are whole-Rupiah integers; there are no fractional digits.
package money

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes integers with id-ID digit grouping ("15.000").
var printer = message.NewPrinter(language.Indonesian)

// Group returns the amount with Indonesian thousands grouping and no
// currency symbol, e.g. 15000 -> "15.000".
func Group(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// Rupiah returns the amount prefixed with the currency symbol,
// e.g. 15000 -> "Rp 15.000". Zero formats as "Rp 0".
func Rupiah(amount int64) string {
	return "Rp " + Group(amount)
}

// PadID zero-pads a positive integer to width digits. Numbers that already
// exceed the width are returned unpadded and untruncated.
func PadID(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
