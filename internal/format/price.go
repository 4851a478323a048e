package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The storefront prices everything in rupees and renders with the en-IN
// locale, matching the amounts printed on server-generated invoices.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// Price renders an amount as an Indian-locale currency string with two
// fraction digits, e.g. 1234.5 -> "₹1,234.50".
func Price(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Amounts returns the selectable quantities 1..max for a quantity picker.
func Amounts(max int) []int {
	if max < 1 {
		return nil
	}
	amounts := make([]int, max)
	for i := range amounts {
		amounts[i] = i + 1
	}
	return amounts
}
