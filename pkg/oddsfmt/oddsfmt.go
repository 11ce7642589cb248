// Package oddsfmt formats decimal odds for display.
package oddsfmt

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Placeholder is rendered when a price cannot be expressed in American odds.
const Placeholder = "-"

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// American converts a decimal price to its American odds display string:
// +round((d-1)*100) when d >= 2, round(-100/(d-1)) otherwise. Prices at
// or below 1.0 (including zero/unset) render as the placeholder instead
// of failing.
func American(price decimal.Decimal) string {
	if price.LessThanOrEqual(one) {
		return Placeholder
	}

	if price.GreaterThanOrEqual(two) {
		n := price.Sub(one).Mul(hundred).Round(0).IntPart()
		return "+" + strconv.FormatInt(n, 10)
	}

	n := hundred.Neg().Div(price.Sub(one)).Round(0).IntPart()
	return strconv.FormatInt(n, 10)
}
