// Package money converts between user-facing decimal amounts and the integer
// milliunits representation that is stored and aggregated.
package money

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// MilliunitsPerUnit is the number of stored milliunits in one major currency unit.
const MilliunitsPerUnit = 1000

var milliunitsFactor = decimal.NewFromInt(MilliunitsPerUnit)

// ToMilliunits multiplies a decimal amount by 1000 and rounds half away from zero.
// Precision beyond three fraction digits is dropped.
func ToMilliunits(amount decimal.Decimal) int64 {
	return amount.Mul(milliunitsFactor).Round(0).IntPart()
}

// FloatToMilliunits is ToMilliunits for float inputs.
func FloatToMilliunits(amount float64) int64 {
	return ToMilliunits(decimal.NewFromFloat(amount))
}

// FromMilliunits returns the exact decimal value of a stored amount.
func FromMilliunits(milliunits int64) decimal.Decimal {
	return decimal.New(milliunits, -3)
}

// FromMilliunitsFloat returns a stored amount as a float, for charting.
func FromMilliunitsFloat(milliunits int64) float64 {
	return FromMilliunits(milliunits).InexactFloat64()
}

// FormatCurrency renders an amount as an en-US dollar string with two fraction
// digits, e.g. "-$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")
	wholeValue, err := decimal.NewFromString(whole)
	if err != nil {
		return sign + "$" + fixed
	}

	return sign + "$" + humanize.Comma(wholeValue.IntPart()) + "." + fraction
}

// FormatMilliunits is FormatCurrency for a stored amount.
func FormatMilliunits(milliunits int64) string {
	return FormatCurrency(FromMilliunits(milliunits))
}

// PercentageChange returns the change from previous to current in percent.
// A zero previous value yields 0 when current is also zero and 100 otherwise.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	return float64(current-previous) / float64(previous) * 100
}
