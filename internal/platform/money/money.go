package money

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders prices for view models with two decimals and a currency
// symbol, e.g. "1250.00 ج.م". Digits are
// never grouped.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a Formatter for locale. An unparseable locale falls
// back to English.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format returns amount with exactly two fraction digits.
func (f *Formatter) Format(amount float64) string {
	s := f.printer.Sprint(number.Decimal(amount,
		number.NoSeparator(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if f.symbol == "" {
		return s
	}
	return s + " " + f.symbol
}
