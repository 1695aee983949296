// Package currency converts between integer minor units (cents) and display
// representations. Amounts are persisted as cents everywhere; conversion to a
// major-unit decimal happens only at the read/write boundary.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ToCents converts a major-unit amount (e.g. 49.99) to integer cents,
// rounding half away from zero. Used on write paths.
func ToCents(major float64) int64 {
	return int64(math.Round(major * 100))
}

// ToMajor converts integer cents to a major-unit decimal. Used by the
// invoice-by-id read path, which returns a numeric amount rather than a
// formatted string.
func ToMajor(cents int64) float64 {
	return float64(cents) / 100
}

// Formatter renders cent amounts as localized currency strings for list and
// summary read paths.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a Formatter for the given BCP 47 locale tag and
// currency symbol. An unparseable locale falls back to en-US.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if symbol == "" {
		symbol = "$"
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format renders integer cents as a currency string, e.g. 123456 → "$1,234.56".
func (f *Formatter) Format(cents int64) string {
	return f.printer.Sprintf("%s%v", f.symbol, number.Decimal(ToMajor(cents), number.Scale(2)))
}
