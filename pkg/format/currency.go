// Package format renders rental prices and aligned labels for display.
package format

import (
	"math"
	"strconv"

	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a rand amount with thousands separators (e.g., "R26,000.00", "-R5.00").
func Currency(amount float64) string {
	amount = mathutil.Round(amount)
	formatted := NumericCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + constants.CurrencySymbol + formatted
	}
	return constants.CurrencySymbol + formatted
}

// NumericCurrency returns an amount without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	amount = mathutil.Round(amount)
	if mathutil.IsZero(amount) {
		amount = 0
	}
	return printer.Sprintf("%.2f", amount)
}

// Plain returns an amount with two decimals and no separators, for machine-readable output.
func Plain(amount float64) string {
	return strconv.FormatFloat(mathutil.Round(amount), 'f', 2, 64)
}
